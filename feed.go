package transit

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/tacal100/transit/model"
	"github.com/tacal100/transit/parse"
)

// Feed holds the in-memory schedule tables loaded from one GTFS data
// directory. A Feed is immutable once loaded; queries derive their own
// index and graph from it and share nothing with each other.
type Feed struct {
	Stops        map[string]model.Stop
	StopTimes    map[string][]model.StopTime // per trip, ordered by stop_sequence
	Routes       map[string]model.Route
	Trips        map[string]model.Trip
	ServiceDates map[string]map[string]bool // service_id -> set of active dates
}

// LoadFeed reads the five GTFS tables from dir. stops.csv and
// stop_times.csv are required; routes.csv, trips.csv and
// calendar_dates.csv degrade to empty maps when absent, costing only
// decorations and the date filter.
func LoadFeed(dir string) (*Feed, error) {
	feed := &Feed{
		Routes:       map[string]model.Route{},
		Trips:        map[string]model.Trip{},
		ServiceDates: map[string]map[string]bool{},
	}

	f, err := os.Open(filepath.Join(dir, "stops.csv"))
	if err != nil {
		return nil, errors.Wrap(err, "opening stops.csv")
	}
	feed.Stops, err = parse.ParseStops(f)
	f.Close()
	if err != nil {
		return nil, errors.Wrap(err, "parsing stops.csv")
	}

	f, err = os.Open(filepath.Join(dir, "stop_times.csv"))
	if err != nil {
		return nil, errors.Wrap(err, "opening stop_times.csv")
	}
	feed.StopTimes, err = parse.ParseStopTimes(f)
	f.Close()
	if err != nil {
		return nil, errors.Wrap(err, "parsing stop_times.csv")
	}

	if f, err := os.Open(filepath.Join(dir, "routes.csv")); err == nil {
		routes, perr := parse.ParseRoutes(f)
		f.Close()
		if perr != nil {
			return nil, errors.Wrap(perr, "parsing routes.csv")
		}
		feed.Routes = routes
	}

	if f, err := os.Open(filepath.Join(dir, "trips.csv")); err == nil {
		trips, perr := parse.ParseTrips(f)
		f.Close()
		if perr != nil {
			return nil, errors.Wrap(perr, "parsing trips.csv")
		}
		feed.Trips = trips
	}

	if f, err := os.Open(filepath.Join(dir, "calendar_dates.csv")); err == nil {
		serviceDates, perr := parse.ParseCalendarDates(f)
		f.Close()
		if perr != nil {
			return nil, errors.Wrap(perr, "parsing calendar_dates.csv")
		}
		feed.ServiceDates = serviceDates
	}

	return feed, nil
}

// Stations returns every stop in the catalogue, ordered by stop_id.
func (f *Feed) Stations() []model.Stop {
	stations := make([]model.Stop, 0, len(f.Stops))
	for _, stop := range f.Stops {
		stations = append(stations, stop)
	}
	sort.Slice(stations, func(i, j int) bool {
		return stations[i].ID < stations[j].ID
	})
	return stations
}

// ResolveStop maps a user query to a stop: an exact stop_id match wins,
// otherwise the first stop (in stop_id order) whose name contains the
// query case-insensitively.
func (f *Feed) ResolveStop(query string) (model.Stop, bool) {
	if stop, ok := f.Stops[query]; ok {
		return stop, true
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return model.Stop{}, false
	}
	for _, stop := range f.Stations() {
		if strings.Contains(strings.ToLower(stop.Name), needle) {
			return stop, true
		}
	}
	return model.Stop{}, false
}
