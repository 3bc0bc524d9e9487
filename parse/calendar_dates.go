package parse

import (
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

type CalendarDateCSV struct {
	ServiceID     string `csv:"service_id"`
	Date          string `csv:"date"`
	ExceptionType string `csv:"exception_type"`
}

// ParseCalendarDates reads calendar_dates.csv into a service_id to
// active-date-set map. Only additive exceptions (exception_type 1)
// contribute. Dates are kept verbatim and compared literally against
// query dates.
func ParseCalendarDates(data io.Reader) (map[string]map[string]bool, error) {
	calendarDateCsv := []*CalendarDateCSV{}
	if err := gocsv.Unmarshal(data, &calendarDateCsv); err != nil {
		return nil, errors.Wrap(err, "unmarshaling calendar_dates csv")
	}

	serviceDates := map[string]map[string]bool{}
	for _, cd := range calendarDateCsv {
		if cd.ServiceID == "" || cd.Date == "" {
			continue
		}
		if strings.TrimSpace(cd.ExceptionType) != "1" {
			continue
		}

		dates := serviceDates[cd.ServiceID]
		if dates == nil {
			dates = map[string]bool{}
			serviceDates[cd.ServiceID] = dates
		}
		dates[cd.Date] = true
	}

	return serviceDates, nil
}
