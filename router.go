package transit

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/tacal100/transit/model"
)

// ComputeRoute answers a single earliest-arrival query against the
// feed: origin and destination stop IDs, a departure time (HH:MM:SS)
// and a service date (YYYYMMDD, hyphens tolerated). The schedule index
// and graph are built for this call and discarded with it.
func (f *Feed) ComputeRoute(originID, destID, startTime, date string) (*Journey, error) {
	origin, ok := f.Stops[originID]
	if !ok {
		return nil, errors.Errorf("Origin stop not found: %s", originID)
	}
	if _, ok := f.Stops[destID]; !ok {
		return nil, errors.Errorf("Destination stop not found: %s", destID)
	}

	if originID == destID {
		return trivialJourney(origin, startTime, date), nil
	}

	startSecs := model.ParseTime(startTime)
	if startSecs == model.TimeUnset {
		return nil, errors.Errorf("Invalid start_time: %s", startTime)
	}

	date = strings.ReplaceAll(date, "-", "")

	index := f.scheduleIndex(startSecs, date)
	g := buildGraph(f, index, startSecs, date)

	path := findEarliestArrivalPath(g, originID, destID, startSecs)
	if path == nil {
		return nil, errors.Errorf("No route found from %s to %s after %s on %s", originID, destID, startTime, date)
	}

	return buildJourney(g, f, path, originID, destID, startTime, date), nil
}

// ComputeRoute loads the GTFS tables from dataDir and answers one query
// with them. Every call owns its ingest, index and graph; nothing is
// shared across calls. Long-lived processes should LoadFeed once and
// query the Feed instead.
func ComputeRoute(originID, destID, startTime, date, dataDir string) (*Journey, error) {
	feed, err := LoadFeed(dataDir)
	if err != nil {
		return nil, err
	}
	return feed.ComputeRoute(originID, destID, startTime, date)
}

// trivialJourney is the answer when origin and destination coincide: a
// single synthetic visit at the query time.
func trivialJourney(stop model.Stop, startTime, date string) *Journey {
	const note = "Origin equals destination"
	return &Journey{
		Origin:             stop.ID,
		OriginName:         stop.Name,
		Destination:        stop.ID,
		DestinationName:    stop.Name,
		StartTime:          startTime,
		Date:               date,
		ArrivalTime:        startTime,
		TotalTravelMinutes: 0,
		StopCount:          1,
		TransferCount:      0,
		Transfers:          []Transfer{},
		DetailedRoute: []StopVisit{{
			StopID:        stop.ID,
			StopName:      stop.Name,
			StopLat:       stop.Lat,
			StopLon:       stop.Lon,
			ArrivalTime:   startTime,
			DepartureTime: startTime,
			Date:          date,
			Note:          note,
		}},
		Note: note,
	}
}
