package transit

import (
	"sort"

	"github.com/tacal100/transit/model"
)

// tripSchedule pairs a trip with its ordered stop-time sequence for one
// query.
type tripSchedule struct {
	TripID    string
	StopTimes []model.StopTime
}

// scheduleIndex selects the trips worth expanding for a query: those
// whose service runs on the query date and which still have a defined
// departure at or after the query start. Trips come out in trip-ID order
// so graph construction is deterministic.
//
// With no calendar loaded the date filter is a no-op, and a trip absent
// from trips.csv cannot be attributed to a service, so it stays in. Both
// keep a feed with missing optional tables routable.
func (f *Feed) scheduleIndex(startSecs int, date string) []tripSchedule {
	activeServices := map[string]bool{}
	for serviceID, dates := range f.ServiceDates {
		if dates[date] {
			activeServices[serviceID] = true
		}
	}
	calendarKnown := len(f.ServiceDates) > 0

	index := []tripSchedule{}
	for tripID, stopTimes := range f.StopTimes {
		if calendarKnown {
			if trip, ok := f.Trips[tripID]; ok && !activeServices[trip.ServiceID] {
				continue
			}
		}

		hasDeparture := false
		for _, st := range stopTimes {
			if st.Departure != model.TimeUnset && st.Departure >= startSecs {
				hasDeparture = true
				break
			}
		}
		if !hasDeparture {
			continue
		}

		index = append(index, tripSchedule{TripID: tripID, StopTimes: stopTimes})
	}

	sort.Slice(index, func(i, j int) bool {
		return index[i].TripID < index[j].TripID
	})
	return index
}
