package pathfinding

import (
	"testing"

	"github.com/google/uuid"
)

func TestFindAllPaths_CapsResultCount(t *testing.T) {
	start, end := nodeID(1), nodeID(9)
	mids := []uuid.UUID{nodeID(2), nodeID(3), nodeID(4), nodeID(5), nodeID(6)}

	// Five distinct simple paths start -> mid -> end.
	graph := Graph{start: {}}
	for _, mid := range mids {
		graph[start] = append(graph[start], Edge{To: mid, Weight: 1})
		graph[mid] = []Edge{{To: end, Weight: 1}}
	}
	pf := NewPathFinder(graph)

	paths := pf.FindAllPaths(start, end, 5, 3)
	if len(paths) != 3 {
		t.Fatalf("expected exactly 3 paths, got %d", len(paths))
	}

	for _, path := range paths {
		if path[0] != start || path[len(path)-1] != end {
			t.Fatalf("path %v does not run start to end", path)
		}
		seen := make(map[uuid.UUID]struct{}, len(path))
		for i, node := range path {
			if _, dup := seen[node]; dup {
				t.Fatalf("path %v repeats node %s", path, node)
			}
			seen[node] = struct{}{}
			if i == 0 {
				continue
			}
			connected := false
			for _, edge := range graph[path[i-1]] {
				if edge.To == node {
					connected = true
					break
				}
			}
			if !connected {
				t.Fatalf("hop %s -> %s not in graph", path[i-1], node)
			}
		}
	}
}

func TestFindAllPaths_Disconnected(t *testing.T) {
	a, b, c := nodeID(1), nodeID(2), nodeID(3)
	pf := NewPathFinder(Graph{
		a: {{To: b, Weight: 1}},
		c: {},
	})

	paths := pf.FindAllPaths(a, c, 5, 3)
	if paths == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(paths) != 0 {
		t.Fatalf("expected no paths, got %v", paths)
	}
}

func TestFindAllPaths_DepthLimitAbandonsLongBranches(t *testing.T) {
	a, b, c := nodeID(1), nodeID(2), nodeID(3)
	pf := NewPathFinder(Graph{
		a: {{To: b, Weight: 1}},
		b: {{To: c, Weight: 1}},
	})

	if paths := pf.FindAllPaths(a, c, 2, 3); len(paths) != 0 {
		t.Fatalf("expected no paths within depth 2, got %v", paths)
	}
	paths := pf.FindAllPaths(a, c, 3, 3)
	if len(paths) != 1 || len(paths[0]) != 3 {
		t.Fatalf("expected the single 3-node path, got %v", paths)
	}
}

func TestFindAllPaths_StopsExploringPastTarget(t *testing.T) {
	a, b, c := nodeID(1), nodeID(2), nodeID(3)
	// b is the target but also has an onward edge; routes through it must
	// not be recorded.
	pf := NewPathFinder(Graph{
		a: {{To: b, Weight: 1}},
		b: {{To: c, Weight: 1}},
		c: {{To: b, Weight: 1}},
	})

	paths := pf.FindAllPaths(a, b, 5, 3)
	if len(paths) != 1 {
		t.Fatalf("expected exactly one path, got %v", paths)
	}
	if len(paths[0]) != 2 {
		t.Fatalf("expected [a b], got %v", paths[0])
	}
}
