package parse

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/tacal100/transit/model"
)

type TripCSV struct {
	ID        string `csv:"trip_id"`
	RouteID   string `csv:"route_id"`
	ServiceID string `csv:"service_id"`
	Headsign  string `csv:"trip_headsign"`
	ShortName string `csv:"trip_short_name"`
}

// ParseTrips reads trips.csv into a trip_id keyed map carrying each
// trip's route, service and display labels. Rows without a trip_id are
// skipped.
func ParseTrips(data io.Reader) (map[string]model.Trip, error) {
	tripCsv := []*TripCSV{}
	if err := gocsv.Unmarshal(data, &tripCsv); err != nil {
		return nil, errors.Wrap(err, "unmarshaling trips csv")
	}

	trips := map[string]model.Trip{}
	for _, t := range tripCsv {
		if t.ID == "" {
			continue
		}
		trips[t.ID] = model.Trip{
			ID:        t.ID,
			RouteID:   t.RouteID,
			ServiceID: t.ServiceID,
			Headsign:  t.Headsign,
			ShortName: t.ShortName,
		}
	}

	return trips, nil
}
