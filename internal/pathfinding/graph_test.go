package pathfinding

import (
	"testing"

	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildGraph_DeclaredNodesAlwaysPresent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	graph, stats, err := BuildGraph(
		[]domain.NodeRecord{{ID: a.String()}, {ID: b.String()}},
		nil,
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.DroppedEdges != 0 {
		t.Fatalf("expected no dropped edges, got %d", stats.DroppedEdges)
	}

	for _, id := range []uuid.UUID{a, b} {
		edges, ok := graph[id]
		if !ok {
			t.Fatalf("expected entry for declared node %s", id)
		}
		if len(edges) != 0 {
			t.Fatalf("expected empty edge list for %s, got %v", id, edges)
		}
	}
}

func TestBuildGraph_DefaultWeightAndProperties(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	graph, _, err := BuildGraph(
		[]domain.NodeRecord{{ID: a.String()}},
		[]domain.EdgeRecord{
			{SourceNodeID: a.String(), TargetNodeID: b.String()},
		},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	edges := graph[a]
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].To != b {
		t.Fatalf("expected edge to %s, got %s", b, edges[0].To)
	}
	if edges[0].Weight != 1.0 {
		t.Fatalf("expected default weight 1.0, got %v", edges[0].Weight)
	}
}

func TestBuildGraph_ExplicitWeight(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	graph, _, err := BuildGraph(
		[]domain.NodeRecord{{ID: a.String()}},
		[]domain.EdgeRecord{
			{
				SourceNodeID: a.String(),
				TargetNodeID: b.String(),
				Weight:       floatPtr(2.5),
				Properties:   map[string]any{"relation": "prerequisite"},
			},
		},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	edge := graph[a][0]
	if edge.Weight != 2.5 {
		t.Fatalf("expected weight 2.5, got %v", edge.Weight)
	}
	if edge.Props["relation"] != "prerequisite" {
		t.Fatalf("expected edge properties to pass through, got %v", edge.Props)
	}
}

func TestBuildGraph_DanglingEdgeDropped(t *testing.T) {
	a, undeclared := uuid.New(), uuid.New()
	graph, stats, err := BuildGraph(
		[]domain.NodeRecord{{ID: a.String()}},
		[]domain.EdgeRecord{
			{SourceNodeID: undeclared.String(), TargetNodeID: a.String()},
		},
	)
	if err != nil {
		t.Fatalf("expected dangling edge to be dropped silently, got error %v", err)
	}
	if stats.DroppedEdges != 1 {
		t.Fatalf("expected 1 dropped edge, got %d", stats.DroppedEdges)
	}
	if _, ok := graph[undeclared]; ok {
		t.Fatalf("expected no entry for undeclared source")
	}
	for id, edges := range graph {
		if len(edges) != 0 {
			t.Fatalf("expected no edges anywhere, found %v on %s", edges, id)
		}
	}
}

func TestBuildGraph_MalformedIdentifiers(t *testing.T) {
	if _, _, err := BuildGraph([]domain.NodeRecord{{ID: "not-a-uuid"}}, nil); err == nil {
		t.Fatal("expected error for malformed node id")
	}

	a := uuid.New()
	_, _, err := BuildGraph(
		[]domain.NodeRecord{{ID: a.String()}},
		[]domain.EdgeRecord{{SourceNodeID: a.String(), TargetNodeID: "nope"}},
	)
	if err == nil {
		t.Fatal("expected error for malformed edge target id")
	}
}
