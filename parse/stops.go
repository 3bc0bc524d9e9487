package parse

import (
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/tacal100/transit/model"
)

type StopCSV struct {
	ID   string `csv:"stop_id"`
	Name string `csv:"stop_name"`
	Lat  string `csv:"stop_lat"`
	Lon  string `csv:"stop_lon"`
}

// ParseStops reads stops.csv into a catalogue keyed by stop_id. Rows
// without a stop_id are skipped, as are rows whose coordinates fail to
// parse. Blank coordinates default to zero.
func ParseStops(data io.Reader) (map[string]model.Stop, error) {
	stopCsv := []*StopCSV{}
	if err := gocsv.Unmarshal(data, &stopCsv); err != nil {
		return nil, errors.Wrap(err, "unmarshaling stops csv")
	}

	stops := map[string]model.Stop{}
	for _, st := range stopCsv {
		if st.ID == "" {
			continue
		}

		lat, err := parseCoordinate(st.Lat)
		if err != nil {
			continue
		}
		lon, err := parseCoordinate(st.Lon)
		if err != nil {
			continue
		}

		stops[st.ID] = model.Stop{
			ID:   st.ID,
			Name: st.Name,
			Lat:  lat,
			Lon:  lon,
		}
	}

	return stops, nil
}

func parseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
