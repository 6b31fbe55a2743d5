package pathfinding

import (
	"github.com/google/uuid"
)

// FindAllPaths enumerates up to maxPaths distinct simple paths from start to
// end by depth-first search with backtracking. Branches are abandoned once
// the current path reaches maxDepth, and exploration never continues past a
// node once the target is reached through it. Returns an empty slice when no
// path exists.
func (pf *PathFinder) FindAllPaths(start, end uuid.UUID, maxDepth, maxPaths int) [][]uuid.UUID {
	found := make([][]uuid.UUID, 0, maxPaths)
	visited := map[uuid.UUID]struct{}{start: {}}
	path := []uuid.UUID{start}

	pf.enumerate(start, end, maxDepth, maxPaths, visited, &path, &found)
	return found
}

func (pf *PathFinder) enumerate(node, end uuid.UUID, maxDepth, maxPaths int, visited map[uuid.UUID]struct{}, path *[]uuid.UUID, found *[][]uuid.UUID) {
	if len(*found) >= maxPaths {
		return
	}

	if node == end {
		*found = append(*found, append([]uuid.UUID(nil), *path...))
		return
	}

	if len(*path) >= maxDepth {
		return
	}

	edges, ok := pf.graph[node]
	if !ok {
		return
	}

	for _, edge := range edges {
		if _, seen := visited[edge.To]; seen {
			continue
		}
		visited[edge.To] = struct{}{}
		*path = append(*path, edge.To)

		pf.enumerate(edge.To, end, maxDepth, maxPaths, visited, path, found)

		*path = (*path)[:len(*path)-1]
		delete(visited, edge.To)
	}
}
