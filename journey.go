package transit

import (
	"fmt"
	"math"

	"github.com/tacal100/transit/model"
)

// Journey is the externally visible answer to a routing query.
type Journey struct {
	Origin             string      `json:"origin"`
	OriginName         string      `json:"origin_name"`
	Destination        string      `json:"destination"`
	DestinationName    string      `json:"destination_name"`
	StartTime          string      `json:"start_time"`
	Date               string      `json:"date"`
	ArrivalTime        string      `json:"arrival_time"`
	TotalTravelMinutes float64     `json:"total_travel_minutes"`
	StopCount          int         `json:"stop_count"`
	TransferCount      int         `json:"transfer_count"`
	Transfers          []Transfer  `json:"transfers"`
	DetailedRoute      []StopVisit `json:"detailed_route"`
	Note               string      `json:"note,omitempty"`
}

// StopVisit describes one stop along the journey.
type StopVisit struct {
	StopID        string  `json:"stop_id"`
	StopName      string  `json:"stop_name"`
	StopLat       float64 `json:"stop_lat"`
	StopLon       float64 `json:"stop_lon"`
	ArrivalTime   string  `json:"arrival_time"`
	DepartureTime string  `json:"departure_time"`
	TripID        string  `json:"trip_id"`
	RouteID       string  `json:"route_id"`
	RouteName     string  `json:"route_name"`
	RouteDesc     string  `json:"route_description"`
	TripHeadsign  string  `json:"trip_headsign"`
	TripShortName string  `json:"trip_short_name"`
	Date          string  `json:"date"`
	IsTransfer    bool    `json:"is_transfer"`
	TransferNote  string  `json:"transfer_note,omitempty"`
	TransferType  string  `json:"transfer_type,omitempty"`
	Note          string  `json:"note,omitempty"`
}

// Transfer records a change of trips at one stop.
type Transfer struct {
	AtStop       string  `json:"at_stop"`
	StopID       string  `json:"stop_id"`
	StopLat      float64 `json:"stop_lat"`
	StopLon      float64 `json:"stop_lon"`
	TransferInfo string  `json:"transfer_info"`
	FromTrip     string  `json:"from_trip"`
	ToTrip       string  `json:"to_trip"`
	FromRoute    string  `json:"from_route"`
	ToRoute      string  `json:"to_route"`
}

// cleanPath drops two artefacts of the search. A path that boards at the
// origin and immediately transfers loses its first node. After that, a
// visit is elided when it sits at the same stop as its predecessor and
// the following node is still at that stop: the path was merely waiting
// there. Origin stripping runs first; the elision walk is left to right
// with one node of lookahead.
func cleanPath(g *graph, path []int) []int {
	if len(path) >= 2 {
		first := g.Nodes[path[0]]
		second := g.Nodes[path[1]]
		if first.StopID == second.StopID && first.TripID != second.TripID {
			path = path[1:]
		}
	}

	if len(path) <= 1 {
		return path
	}

	cleaned := []int{path[0]}
	for i := 1; i < len(path); i++ {
		cur := g.Nodes[path[i]]
		last := g.Nodes[cleaned[len(cleaned)-1]]
		if cur.StopID == last.StopID && i+1 < len(path) && g.Nodes[path[i+1]].StopID == cur.StopID {
			continue
		}
		cleaned = append(cleaned, path[i])
	}
	return cleaned
}

// buildJourney converts a cleaned node path into the journey record:
// per-stop visits, the transfer list, and the totals.
func buildJourney(g *graph, feed *Feed, path []int, originID, destID, startTime, date string) *Journey {
	path = cleanPath(g, path)

	visits := make([]StopVisit, 0, len(path))
	transfers := []Transfer{}
	lastTripID := ""

	for i, id := range path {
		n := g.Nodes[id]
		stop := feed.Stops[n.StopID]

		visit := StopVisit{
			StopID:        n.StopID,
			StopName:      n.StopName,
			StopLat:       stop.Lat,
			StopLon:       stop.Lon,
			ArrivalTime:   model.FormatTime(n.Arrival),
			DepartureTime: model.FormatTime(n.Departure),
			TripID:        n.TripID,
			RouteID:       n.RouteID,
			RouteName:     n.RouteName,
			RouteDesc:     n.RouteDesc,
			TripHeadsign:  n.TripHeadsign,
			TripShortName: n.TripShortName,
			Date:          n.Date,
		}

		if i > 0 && n.TripID != lastTripID {
			visit.IsTransfer = true
			visit.TransferNote = fmt.Sprintf("Transfer from trip %s to trip %s", lastTripID, n.TripID)
			visit.TransferType = "departure"

			transfers = append(transfers, Transfer{
				AtStop:       n.StopName,
				StopID:       n.StopID,
				StopLat:      stop.Lat,
				StopLon:      stop.Lon,
				TransferInfo: visit.TransferNote,
				FromTrip:     lastTripID,
				ToTrip:       n.TripID,
				FromRoute:    g.Nodes[path[i-1]].RouteID,
				ToRoute:      n.RouteID,
			})
		}

		visits = append(visits, visit)
		lastTripID = n.TripID
	}

	first := g.Nodes[path[0]]
	last := g.Nodes[path[len(path)-1]]
	minutes := math.Round(float64(last.Arrival-first.Departure)/60*10) / 10

	return &Journey{
		Origin:             originID,
		OriginName:         feed.stopName(originID),
		Destination:        destID,
		DestinationName:    feed.stopName(destID),
		StartTime:          startTime,
		Date:               date,
		ArrivalTime:        model.FormatTime(last.Arrival),
		TotalTravelMinutes: minutes,
		StopCount:          len(visits),
		TransferCount:      len(transfers),
		Transfers:          transfers,
		DetailedRoute:      visits,
	}
}

// stopName falls back to the raw ID when the catalogue has no entry.
func (f *Feed) stopName(stopID string) string {
	if stop, ok := f.Stops[stopID]; ok {
		return stop.Name
	}
	return stopID
}
