package transit

import (
	"container/heap"
	"math"
)

const infinity = math.MaxInt32

type pqItem struct {
	node int
	cost int
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// dijkstra runs a single-source shortest-path over edge weights and
// returns the cost and predecessor of every node.
func dijkstra(g *graph, source int) (dist []int, prev []int) {
	dist = make([]int, len(g.Nodes))
	prev = make([]int, len(g.Nodes))
	for i := range dist {
		dist[i] = infinity
		prev[i] = -1
	}
	dist[source] = 0

	pq := &priorityQueue{{node: source, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if item.cost > dist[item.node] {
			continue
		}
		for _, e := range g.Adj[item.node] {
			if cost := item.cost + e.Weight; cost < dist[e.To] {
				dist[e.To] = cost
				prev[e.To] = item.node
				heap.Push(pq, pqItem{node: e.To, cost: cost})
			}
		}
	}

	return dist, prev
}

// findEarliestArrivalPath tries up to maxStartNodes departures from the
// origin and keeps the destination node reached with the smallest real
// arrival time. Dijkstra costs include transfer penalties, so targets
// are compared on the clock instead; the first path found wins ties.
func findEarliestArrivalPath(g *graph, originID, destID string, startSecs int) []int {
	starts := startNodes(g, originID, startSecs)
	targets := g.Departures[destID]
	if len(starts) == 0 || len(targets) == 0 {
		return nil
	}

	var best []int
	bestArrival := infinity

	for _, start := range starts {
		dist, prev := dijkstra(g, start)
		for _, ref := range targets {
			if dist[ref.Node] == infinity {
				continue
			}
			if arrival := g.Nodes[ref.Node].Arrival; arrival < bestArrival {
				bestArrival = arrival
				best = pathTo(prev, ref.Node)
			}
		}
	}

	return best
}

// startNodes lists the origin's departures at or after the query start,
// capped at maxStartNodes. The per-stop lists are already sorted by
// departure time, so the cap keeps the earliest candidates.
func startNodes(g *graph, originID string, startSecs int) []int {
	starts := []int{}
	for _, ref := range g.Departures[originID] {
		if ref.Departure < startSecs {
			continue
		}
		starts = append(starts, ref.Node)
		if len(starts) == maxStartNodes {
			break
		}
	}
	return starts
}

// pathTo unwinds a predecessor chain into a forward node sequence.
func pathTo(prev []int, target int) []int {
	path := []int{}
	for at := target; at != -1; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
