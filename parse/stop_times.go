package parse

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/tacal100/transit/model"
)

type StopTimeCSV struct {
	TripID        string `csv:"trip_id"`
	StopID        string `csv:"stop_id"`
	StopSequence  string `csv:"stop_sequence"`
	ArrivalTime   string `csv:"arrival_time"`
	DepartureTime string `csv:"departure_time"`
}

// ParseStopTimes reads stop_times.csv and groups the rows per trip,
// ordered by stop_sequence. Times become seconds since midnight, with
// model.TimeUnset marking values that did not parse. Rows missing
// trip_id or stop_id are skipped; an unparseable stop_sequence sorts
// as 0.
func ParseStopTimes(data io.Reader) (map[string][]model.StopTime, error) {
	byTrip := map[string][]model.StopTime{}

	err := gocsv.UnmarshalToCallbackWithError(data, func(st *StopTimeCSV) error {
		if st.TripID == "" || st.StopID == "" {
			return nil
		}

		seq, err := strconv.Atoi(strings.TrimSpace(st.StopSequence))
		if err != nil {
			seq = 0
		}

		byTrip[st.TripID] = append(byTrip[st.TripID], model.StopTime{
			TripID:       st.TripID,
			StopID:       st.StopID,
			StopSequence: seq,
			Arrival:      model.ParseTime(st.ArrivalTime),
			Departure:    model.ParseTime(st.DepartureTime),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unmarshaling stop_times csv")
	}

	for tripID := range byTrip {
		seq := byTrip[tripID]
		sort.SliceStable(seq, func(i, j int) bool {
			return seq[i].StopSequence < seq[j].StopSequence
		})
	}

	return byTrip, nil
}
