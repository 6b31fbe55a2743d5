// Package service orchestrates the learning-path engine: it snapshots the
// course topology from the repository, builds a fresh adjacency graph per
// request, runs the requested search, and records observability signals.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/metrics"
	"github.com/redmage123/course-creator-sub021/internal/pathfinding"
	"github.com/redmage123/course-creator-sub021/internal/repository"
)

// TopologySource supplies point-in-time knowledge-graph snapshots.
type TopologySource interface {
	FetchTopology(ctx context.Context) (repository.Topology, error)
}

// Limits bounds search depth and enumeration breadth. Enumeration is
// exponential, so its depth default is deliberately shallower than the
// single-path default.
type Limits struct {
	MaxDepth     int
	EnumMaxDepth int
	MaxPaths     int
}

// DefaultLimits mirrors the engine's historical defaults.
var DefaultLimits = Limits{MaxDepth: 10, EnumMaxDepth: 5, MaxPaths: 3}

// PathService computes learning paths over the stored course graph.
type PathService struct {
	source TopologySource
	logger *slog.Logger
	limits Limits
}

// NewPathService builds a PathService. Zero limit fields fall back to the
// defaults.
func NewPathService(source TopologySource, logger *slog.Logger, limits Limits) *PathService {
	if limits.MaxDepth <= 0 {
		limits.MaxDepth = DefaultLimits.MaxDepth
	}
	if limits.EnumMaxDepth <= 0 {
		limits.EnumMaxDepth = DefaultLimits.EnumMaxDepth
	}
	if limits.MaxPaths <= 0 {
		limits.MaxPaths = DefaultLimits.MaxPaths
	}
	return &PathService{source: source, logger: logger, limits: limits}
}

// FindLearningPath computes an enriched path under the named optimization
// strategy. A nil summary with a nil error means no path exists, which is a
// normal outcome, not a failure.
func (s *PathService) FindLearningPath(ctx context.Context, start, end uuid.UUID, opt pathfinding.Optimization, maxDepth int) (*pathfinding.PathSummary, error) {
	started := time.Now()

	finder, topology, err := s.prepare(ctx)
	if err != nil {
		metrics.RecordPathRequest(string(opt), "error", time.Since(started))
		return nil, err
	}

	summary := finder.FindLearningPath(start, end, topology.Properties, opt, s.depth(maxDepth))

	outcome := "found"
	if summary == nil {
		outcome = "not_found"
	}
	metrics.RecordPathRequest(string(opt), outcome, time.Since(started))
	return summary, nil
}

// ShortestPath returns the raw minimum-weight path, or nil when none exists.
func (s *PathService) ShortestPath(ctx context.Context, start, end uuid.UUID, maxDepth int) ([]uuid.UUID, error) {
	started := time.Now()

	finder, _, err := s.prepare(ctx)
	if err != nil {
		metrics.RecordPathRequest(string(pathfinding.OptimizeShortest), "error", time.Since(started))
		return nil, err
	}

	path := finder.Dijkstra(start, end, s.depth(maxDepth))

	outcome := "found"
	if path == nil {
		outcome = "not_found"
	}
	metrics.RecordPathRequest(string(pathfinding.OptimizeShortest), outcome, time.Since(started))
	return path, nil
}

// AlternativePaths enumerates distinct simple paths. The result may be empty;
// that is not an error.
func (s *PathService) AlternativePaths(ctx context.Context, start, end uuid.UUID, maxDepth, maxPaths int) ([][]uuid.UUID, error) {
	finder, _, err := s.prepare(ctx)
	if err != nil {
		return nil, err
	}

	if maxDepth <= 0 || maxDepth > s.limits.EnumMaxDepth {
		maxDepth = s.limits.EnumMaxDepth
	}
	if maxPaths <= 0 || maxPaths > s.limits.MaxPaths {
		maxPaths = s.limits.MaxPaths
	}

	paths := finder.FindAllPaths(start, end, maxDepth, maxPaths)
	metrics.AlternativePathsReturned.Observe(float64(len(paths)))
	return paths, nil
}

// prepare snapshots the topology and builds a fresh finder over it.
func (s *PathService) prepare(ctx context.Context) (*pathfinding.PathFinder, repository.Topology, error) {
	topology, err := s.source.FetchTopology(ctx)
	if err != nil {
		return nil, repository.Topology{}, fmt.Errorf("fetch topology: %w", err)
	}

	graph, stats, err := pathfinding.BuildGraph(topology.Nodes, topology.Edges)
	if err != nil {
		return nil, repository.Topology{}, fmt.Errorf("build graph: %w", err)
	}

	if stats.DroppedEdges > 0 {
		metrics.RecordDroppedEdges(stats.DroppedEdges)
		s.logger.Warn("dropped dangling prerequisite edges during graph build",
			"dropped", stats.DroppedEdges,
			"nodes", len(topology.Nodes),
			"edges", len(topology.Edges),
		)
	}

	return pathfinding.NewPathFinder(graph), topology, nil
}

func (s *PathService) depth(requested int) int {
	if requested <= 0 || requested > s.limits.MaxDepth {
		return s.limits.MaxDepth
	}
	return requested
}
