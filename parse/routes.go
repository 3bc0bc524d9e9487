package parse

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/tacal100/transit/model"
)

type RouteCSV struct {
	ID        string `csv:"route_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Type      string `csv:"route_type"`
}

// ParseRoutes reads routes.csv into a catalogue keyed by route_id. Rows
// without a route_id are skipped.
func ParseRoutes(data io.Reader) (map[string]model.Route, error) {
	routeCsv := []*RouteCSV{}
	if err := gocsv.Unmarshal(data, &routeCsv); err != nil {
		return nil, errors.Wrap(err, "unmarshaling routes csv")
	}

	routes := map[string]model.Route{}
	for _, r := range routeCsv {
		if r.ID == "" {
			continue
		}
		routes[r.ID] = model.Route{
			ID:        r.ID,
			ShortName: r.ShortName,
			LongName:  r.LongName,
			Type:      r.Type,
		}
	}

	return routes, nil
}
