package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tacal100/transit"
)

const defaultStartTime = "08:00:00"

type routeResponse struct {
	*transit.Journey
	Success bool `json:"success"`
}

type station struct {
	StopID   string  `json:"stop_id"`
	StopName string  `json:"stop_name"`
	StopLat  float64 `json:"stop_lat"`
	StopLon  float64 `json:"stop_lon"`
}

type stationsResponse struct {
	Stations []station `json:"stations"`
	Success  bool      `json:"success"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// handleRoute serves GET /api/route?from=X&to=Y&time=HH:MM:SS&date=YYYYMMDD.
// from and to take a stop_id or a partial station name; time defaults to
// 08:00:00 and date to today.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.serveRoute(w, q.Get("from"), q.Get("to"), q.Get("time"), q.Get("date"))
}

type routeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Time string `json:"time"`
	Date string `json:"date"`
}

// handleRoutePost serves POST /api/route with a JSON body holding the
// same fields as the GET query parameters.
func (s *Server) handleRoutePost(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	s.serveRoute(w, req.From, req.To, req.Time, req.Date)
}

func (s *Server) serveRoute(w http.ResponseWriter, from, to, startTime, date string) {
	if from == "" {
		respondError(w, http.StatusBadRequest, "Missing 'from' parameter")
		return
	}
	if to == "" {
		respondError(w, http.StatusBadRequest, "Missing 'to' parameter")
		return
	}
	if startTime == "" {
		startTime = defaultStartTime
	}
	if date == "" {
		date = time.Now().Format("20060102")
	}

	// Station names are resolved to stop IDs up front; unresolvable
	// queries pass through so the engine reports them.
	originID := from
	if stop, ok := s.feed.ResolveStop(from); ok {
		originID = stop.ID
	}
	destID := to
	if stop, ok := s.feed.ResolveStop(to); ok {
		destID = stop.ID
	}

	journey, err := s.feed.ComputeRoute(originID, destID, startTime, date)
	if err != nil {
		s.logger.Info("query failed", "from", from, "to", to, "err", err)
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, routeResponse{Journey: journey, Success: true})
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	stops := s.feed.Stations()
	stations := make([]station, 0, len(stops))
	for _, stop := range stops {
		stations = append(stations, station{
			StopID:   stop.ID,
			StopName: stop.Name,
			StopLat:  stop.Lat,
			StopLon:  stop.Lon,
		})
	}
	respondJSON(w, http.StatusOK, stationsResponse{Stations: stations, Success: true})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "train-routing-api",
		"success": true,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Train Routing API",
		"endpoints": map[string]string{
			"GET /api/route":    "Get route between stations (query params: from, to, time, date)",
			"POST /api/route":   "Get route between stations (JSON body: {from, to, time, date})",
			"GET /api/stations": "Get list of all stations",
			"GET /api/health":   "Health check",
		},
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
