package pathfinding

import (
	"math"

	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/domain"
)

// Optimization names a learning-path selection strategy.
type Optimization string

const (
	// OptimizeShortest minimises total edge weight (plain Dijkstra).
	OptimizeShortest Optimization = "shortest"
	// OptimizeEasiest biases the search towards nodes whose difficulty is
	// close to the target's difficulty level.
	OptimizeEasiest Optimization = "easiest"
	// OptimizeFastest minimises total course duration by reweighting every
	// edge to the duration of the node it leads to.
	OptimizeFastest Optimization = "fastest"
)

// Duration assumed for a node with no duration property when reweighting for
// the fastest strategy. Deliberately differs from the enrichment default of 0.
const defaultReweightDuration = 40.0

// FindLearningPath selects a path between start and end under the named
// strategy and returns its enriched summary, or nil when no path exists.
// Unknown strategies fall back to shortest.
func (pf *PathFinder) FindLearningPath(start, end uuid.UUID, props domain.NodeProperties, opt Optimization, maxDepth int) *PathSummary {
	var path []uuid.UUID

	switch opt {
	case OptimizeEasiest:
		path = pf.AStar(start, end, DifficultyHeuristic(props), maxDepth)
	case OptimizeFastest:
		// Search a locally reweighted copy through a transient finder so
		// concurrent callers never observe a modified graph.
		reweighted := NewPathFinder(reweightByDuration(pf.graph, props))
		path = reweighted.Dijkstra(start, end, maxDepth)
	default:
		path = pf.Dijkstra(start, end, maxDepth)
	}

	if path == nil {
		return nil
	}
	return Summarize(path, props)
}

// DifficultyHeuristic estimates remaining effort as the absolute difference
// between a node's difficulty level and the target's difficulty level. It
// always measures distance to the target's level, not a smooth gradient along
// the path.
func DifficultyHeuristic(props domain.NodeProperties) HeuristicFunc {
	return func(node, target uuid.UUID) float64 {
		nodeLevel := DifficultyLevel(props[node].Difficulty)
		targetLevel := DifficultyLevel(props[target].Difficulty)
		return math.Abs(float64(nodeLevel - targetLevel))
	}
}

// reweightByDuration builds a copy of the graph where the cost of traversing
// to a node equals that node's duration, independent of the original edge
// weight.
func reweightByDuration(graph Graph, props domain.NodeProperties) Graph {
	reweighted := make(Graph, len(graph))
	for id, edges := range graph {
		out := make([]Edge, len(edges))
		for i, edge := range edges {
			weight := defaultReweightDuration
			if duration := props[edge.To].Duration; duration != nil {
				weight = *duration
			}
			out[i] = Edge{To: edge.To, Weight: weight, Props: edge.Props}
		}
		reweighted[id] = out
	}
	return reweighted
}
