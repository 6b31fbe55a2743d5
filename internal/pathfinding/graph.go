// Package pathfinding implements the learning-path engine: adjacency-graph
// construction over course/prerequisite records, weighted shortest-path
// search (Dijkstra and A*), business-policy path selection, bounded
// enumeration of alternative paths, and path enrichment.
package pathfinding

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/domain"
)

// Edge is a directed outgoing relation held in the adjacency graph.
type Edge struct {
	To     uuid.UUID
	Weight float64
	Props  map[string]any
}

// Graph maps a node to its ordered list of outgoing edges. Every declared
// node has an entry, possibly empty for sinks; nodes that only ever appear as
// edge targets may be absent, and lookups against them mean "no outgoing
// edges" rather than an error.
type Graph map[uuid.UUID][]Edge

// BuildStats reports data-quality counters from graph construction.
type BuildStats struct {
	// DroppedEdges counts edges whose source node was never declared.
	// Such edges are skipped without error to tolerate partial ingestion
	// data, but callers should surface the count.
	DroppedEdges int
}

const defaultEdgeWeight = 1.0

// BuildGraph converts flat node and edge records into an adjacency graph.
// Declared nodes are always present in the result, even with zero outgoing
// edges. Edges referencing an undeclared source are dropped and counted in
// the returned stats. Malformed identifiers fail with a parse error.
func BuildGraph(nodes []domain.NodeRecord, edges []domain.EdgeRecord) (Graph, BuildStats, error) {
	graph := make(Graph, len(nodes))
	var stats BuildStats

	for _, node := range nodes {
		id, err := uuid.Parse(node.ID)
		if err != nil {
			return nil, BuildStats{}, fmt.Errorf("parse node id %q: %w", node.ID, err)
		}
		if _, ok := graph[id]; !ok {
			graph[id] = []Edge{}
		}
	}

	for _, edge := range edges {
		source, err := uuid.Parse(edge.SourceNodeID)
		if err != nil {
			return nil, BuildStats{}, fmt.Errorf("parse edge source id %q: %w", edge.SourceNodeID, err)
		}
		target, err := uuid.Parse(edge.TargetNodeID)
		if err != nil {
			return nil, BuildStats{}, fmt.Errorf("parse edge target id %q: %w", edge.TargetNodeID, err)
		}

		if _, ok := graph[source]; !ok {
			stats.DroppedEdges++
			continue
		}

		weight := defaultEdgeWeight
		if edge.Weight != nil {
			weight = *edge.Weight
		}
		graph[source] = append(graph[source], Edge{
			To:     target,
			Weight: weight,
			Props:  edge.Properties,
		})
	}

	return graph, stats, nil
}
