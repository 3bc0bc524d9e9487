package transit

import (
	"sort"

	"github.com/tacal100/transit/model"
)

// Tuning constants for the time-expanded graph and its search. The
// transfer penalty is ten minutes of edge weight; it steers the search
// away from trip changes without touching the real clock times carried
// on the nodes. The per-arrival scan bound keeps transfer fan-out
// constant, so the graph stays near-linear in total trip length.
const (
	transferPenalty        = 600
	maxTransfersPerArrival = 2
	maxStartNodes          = 10
	graphHorizon           = 24 * 3600
)

type edgeKind int8

const (
	edgeInVehicle edgeKind = iota
	edgeTransfer
)

// node is one vehicle visit to a stop: a (stop, trip, index) triple with
// the stop-time's clock readings and the display decorations copied on.
type node struct {
	StopID        string
	TripID        string
	Seq           int
	Arrival       int
	Departure     int
	StopName      string
	RouteID       string
	RouteName     string
	RouteDesc     string
	TripHeadsign  string
	TripShortName string
	Date          string
}

type edge struct {
	To     int
	Weight int
	Kind   edgeKind
}

// departureRef points at a node departing from a stop.
type departureRef struct {
	Node      int
	Departure int
}

// graph is the per-query time-expanded digraph. Node IDs are dense ints
// indexing Nodes and Adj.
type graph struct {
	Nodes []node
	Adj   [][]edge

	// Departures lists each stop's outbound nodes, sorted ascending by
	// departure time once buildGraph returns.
	Departures map[string][]departureRef
}

func (g *graph) addNode(n node) int {
	g.Nodes = append(g.Nodes, n)
	g.Adj = append(g.Adj, nil)
	return len(g.Nodes) - 1
}

func (g *graph) addEdge(from, to, weight int, kind edgeKind) {
	g.Adj[from] = append(g.Adj[from], edge{To: to, Weight: weight, Kind: kind})
}

// buildGraph expands the index's trips into stop-visit nodes, chains
// each trip with in-vehicle edges, and links trips at shared stops with
// penalised transfer edges.
func buildGraph(feed *Feed, index []tripSchedule, startSecs int, date string) *graph {
	g := &graph{Departures: map[string][]departureRef{}}

	for _, trip := range index {
		tripInfo := feed.Trips[trip.TripID]
		routeInfo, routeKnown := feed.Routes[tripInfo.RouteID]
		routeName := routeInfo.ShortName
		if !routeKnown {
			routeName = tripInfo.RouteID
		}

		prev := -1
		for idx, st := range trip.StopTimes {
			if st.Arrival == model.TimeUnset || st.Departure == model.TimeUnset {
				// An undecorated row breaks the in-vehicle chain.
				prev = -1
				continue
			}
			if st.Departure > startSecs+graphHorizon {
				continue
			}

			id := g.addNode(node{
				StopID:        st.StopID,
				TripID:        trip.TripID,
				Seq:           idx,
				Arrival:       st.Arrival,
				Departure:     st.Departure,
				StopName:      feed.Stops[st.StopID].Name,
				RouteID:       tripInfo.RouteID,
				RouteName:     routeName,
				RouteDesc:     routeInfo.LongName,
				TripHeadsign:  tripInfo.Headsign,
				TripShortName: tripInfo.ShortName,
				Date:          date,
			})
			g.Departures[st.StopID] = append(g.Departures[st.StopID], departureRef{
				Node:      id,
				Departure: st.Departure,
			})

			if prev >= 0 {
				travel := st.Arrival - g.Nodes[prev].Departure
				if travel >= 0 {
					g.addEdge(prev, id, travel, edgeInVehicle)
				}
			}
			prev = id
		}
	}

	for stopID := range g.Departures {
		deps := g.Departures[stopID]
		sort.SliceStable(deps, func(i, j int) bool {
			return deps[i].Departure < deps[j].Departure
		})

		// Each arrival may board one of the next few departures on a
		// different trip.
		for i := range deps {
			from := &g.Nodes[deps[i].Node]
			added := 0
			for j := i + 1; j < len(deps) && j <= i+maxTransfersPerArrival; j++ {
				to := &g.Nodes[deps[j].Node]
				if to.TripID == from.TripID {
					continue
				}
				wait := to.Departure - from.Arrival
				if wait < 0 {
					continue
				}
				g.addEdge(deps[i].Node, deps[j].Node, wait+transferPenalty, edgeTransfer)
				added++
				if added >= maxTransfersPerArrival {
					break
				}
			}
		}
	}

	return g
}
