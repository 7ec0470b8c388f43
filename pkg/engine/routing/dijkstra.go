package routing

import (
	"github.com/waypointd/waypointd/pkg"
	da "github.com/waypointd/waypointd/pkg/datastructure"
	"github.com/waypointd/waypointd/pkg/util"
)

// Dijkstra label-setting single-pair shortest path search. The frontier
// never supports decrease-key: an improved label is re-inserted and the
// stale entry is skipped once its waypoint is settled.
type Dijkstra struct {
	graph *da.Graph

	dist    map[string]float64
	prev    map[string]string
	settled map[string]bool

	pq *da.MinHeap[string]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
		pq:    da.NewBinaryHeap[string](),
	}
}

// ShortestPath runs the search from s and stops as soon as t is
// settled, its label being final at that point. Returns the settled
// distance of t, the path from s to t inclusive, and whether t was
// reachable at all.
func (us *Dijkstra) ShortestPath(s, t string) (float64, []string, bool) {
	us.Preallocate()

	us.dist[s] = 0
	us.pq.Insert(da.NewPriorityQueueNode(0, s))

	for !us.pq.IsEmpty() {
		node, _ := us.pq.ExtractMin()
		u := node.GetItem()

		if us.settled[u] {
			// stale frontier entry, its waypoint was settled through a
			// shorter label already
			continue
		}
		us.settled[u] = true
		us.numSettledNodes++

		if u == t {
			break
		}

		us.relaxNeighbors(u)
	}

	if _, ok := us.prev[t]; !ok && s != t {
		return 0, nil, false
	}

	return us.dist[t], us.reconstructPath(s, t), true
}

func (us *Dijkstra) relaxNeighbors(u string) {
	for _, neighbor := range us.graph.Neighbors(u) {
		v := neighbor.To
		if us.settled[v] {
			continue
		}

		newDist := us.dist[u] + neighbor.Weight
		if newDist < us.dist[v] {
			us.dist[v] = newDist
			us.prev[v] = u
			us.pq.Insert(da.NewPriorityQueueNode(newDist, v))
		}
	}
}

func (us *Dijkstra) reconstructPath(s, t string) []string {
	backward := make([]string, 0, 8)
	for cur := t; ; cur = us.prev[cur] {
		backward = append(backward, cur)
		if cur == s {
			break
		}
	}
	return util.ReverseG(backward)
}

func (us *Dijkstra) Preallocate() {
	n := us.graph.NumberOfPoints()
	us.dist = make(map[string]float64, n)
	us.prev = make(map[string]string, n)
	us.settled = make(map[string]bool, n)
	for _, wp := range us.graph.ListPoints() {
		us.dist[wp.Id] = pkg.INF_WEIGHT
	}

	us.pq.Clear()
	us.pq.Preallocate(n)
	us.numSettledNodes = 0
}
