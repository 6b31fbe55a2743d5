package pathfinding

import (
	"container/heap"

	"github.com/google/uuid"
)

// HeuristicFunc estimates the remaining cost from a node to the target. A*
// does not validate admissibility; an inadmissible heuristic trades
// optimality for search bias, which is accepted.
type HeuristicFunc func(node, target uuid.UUID) float64

// PathFinder runs searches over an immutable adjacency graph. It holds no
// other state, so a single instance is safe for concurrent use.
type PathFinder struct {
	graph Graph
}

// NewPathFinder wraps the supplied graph. The graph is read, never mutated.
func NewPathFinder(graph Graph) *PathFinder {
	return &PathFinder{graph: graph}
}

// Dijkstra returns the minimum-weight path from start to end, or nil when no
// path exists within maxDepth. The depth guard applies to popped entries, so
// a branch may be generated one hop past maxDepth before being pruned.
func (pf *PathFinder) Dijkstra(start, end uuid.UUID, maxDepth int) []uuid.UUID {
	return pf.search(start, end, zeroHeuristic, maxDepth)
}

// AStar is Dijkstra with the queue ordered by f = g + heuristic(node, end).
// Only g feeds the best-known-cost table. A nil heuristic panics on first use.
func (pf *PathFinder) AStar(start, end uuid.UUID, heuristic HeuristicFunc, maxDepth int) []uuid.UUID {
	return pf.search(start, end, heuristic, maxDepth)
}

func zeroHeuristic(uuid.UUID, uuid.UUID) float64 { return 0 }

func (pf *PathFinder) search(start, end uuid.UUID, heuristic HeuristicFunc, maxDepth int) []uuid.UUID {
	// Trivial path, before any graph membership check.
	if start == end {
		return []uuid.UUID{start}
	}
	if _, ok := pf.graph[start]; !ok {
		return nil
	}

	queue := &searchQueue{}
	heap.Init(queue)
	queue.push(0, start, []uuid.UUID{start}, 0)

	visited := make(map[uuid.UUID]struct{})
	bestCost := map[uuid.UUID]float64{start: 0}

	for queue.Len() > 0 {
		current := queue.pop()

		if current.node == end {
			return current.path
		}
		if _, seen := visited[current.node]; seen {
			continue
		}
		visited[current.node] = struct{}{}

		if len(current.path) > maxDepth {
			continue
		}

		for _, edge := range pf.graph[current.node] {
			if _, seen := visited[edge.To]; seen {
				continue
			}
			cost := current.cost + edge.Weight
			if previous, ok := bestCost[edge.To]; ok && cost >= previous {
				continue
			}
			bestCost[edge.To] = cost

			path := make([]uuid.UUID, len(current.path)+1)
			copy(path, current.path)
			path[len(current.path)] = edge.To

			queue.push(cost+heuristic(edge.To, end), edge.To, path, cost)
		}
	}

	return nil
}

// queueEntry is a frontier candidate: priority orders the heap, cost is the
// accumulated g-score along path.
type queueEntry struct {
	priority float64
	node     uuid.UUID
	path     []uuid.UUID
	cost     float64
	seq      uint64
}

// searchQueue is a min-heap over queueEntry. Equal priorities break FIFO via
// the insertion sequence, which makes search results deterministic.
type searchQueue struct {
	entries []*queueEntry
	nextSeq uint64
}

func (q *searchQueue) Len() int { return len(q.entries) }

func (q *searchQueue) Less(i, j int) bool {
	if q.entries[i].priority != q.entries[j].priority {
		return q.entries[i].priority < q.entries[j].priority
	}
	return q.entries[i].seq < q.entries[j].seq
}

func (q *searchQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *searchQueue) Push(x any) {
	q.entries = append(q.entries, x.(*queueEntry))
}

func (q *searchQueue) Pop() any {
	old := q.entries
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	q.entries = old[:n-1]
	return entry
}

func (q *searchQueue) push(priority float64, node uuid.UUID, path []uuid.UUID, cost float64) {
	entry := &queueEntry{
		priority: priority,
		node:     node,
		path:     path,
		cost:     cost,
		seq:      q.nextSeq,
	}
	q.nextSeq++
	heap.Push(q, entry)
}

func (q *searchQueue) pop() *queueEntry {
	return heap.Pop(q).(*queueEntry)
}
