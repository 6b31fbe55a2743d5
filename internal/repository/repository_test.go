package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/domain"
	"github.com/redmage123/course-creator-sub021/internal/graph"
)

func TestRepository_FetchTopology(t *testing.T) {
	mem := graph.NewMemoryClient()
	a, b := uuid.New(), uuid.New()

	mem.QueueReadResult(graph.Result{Records: []graph.Record{
		{"id": a.String(), "difficulty": "beginner", "duration": int64(30)},
		{"id": b.String(), "difficulty": "advanced", "duration": 45.0},
	}})
	mem.QueueReadResult(graph.Result{Records: []graph.Record{
		{"sourceId": a.String(), "targetId": b.String(), "weight": 2.0},
		{"sourceId": b.String(), "targetId": a.String(), "weight": nil},
	}})

	repo := New(mem)
	topology, err := repo.FetchTopology(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(topology.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(topology.Nodes))
	}
	if len(topology.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(topology.Edges))
	}

	propsA := topology.Properties[a]
	if propsA.Difficulty != "beginner" {
		t.Errorf("expected beginner difficulty, got %q", propsA.Difficulty)
	}
	if propsA.Duration == nil || *propsA.Duration != 30 {
		t.Errorf("expected duration 30, got %v", propsA.Duration)
	}

	if topology.Edges[0].Weight == nil || *topology.Edges[0].Weight != 2.0 {
		t.Errorf("expected explicit weight 2.0, got %v", topology.Edges[0].Weight)
	}
	if topology.Edges[1].Weight != nil {
		t.Errorf("expected nil weight for unset store value, got %v", *topology.Edges[1].Weight)
	}

	calls := mem.ReadCalls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 read queries, got %d", len(calls))
	}
	if calls[0].Query != fetchCoursesCypher || calls[1].Query != fetchPrerequisitesCypher {
		t.Fatalf("unexpected query order: %q then %q", calls[0].Query, calls[1].Query)
	}
}

func TestRepository_FetchTopologyPropagatesReadErrors(t *testing.T) {
	boom := errors.New("store unavailable")
	mem := graph.NewMemoryClient().FailWith(boom)
	repo := New(mem)

	if _, err := repo.FetchTopology(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestRepository_FetchTopologyRejectsMalformedCourseID(t *testing.T) {
	mem := graph.NewMemoryClient()
	mem.QueueReadResult(graph.Result{Records: []graph.Record{
		{"id": "not-a-uuid", "difficulty": "beginner"},
	}})

	repo := New(mem)
	if _, err := repo.FetchTopology(context.Background()); err == nil {
		t.Fatal("expected error for malformed course id")
	}
}

func TestRepository_UpsertCourse(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	course := domain.Course{
		ID:         uuid.NewString(),
		Title:      "Graph Algorithms",
		Difficulty: domain.DifficultyAdvanced,
		Duration:   60,
		Topics:     []string{"graphs", "search"},
	}
	if err := repo.UpsertCourse(context.Background(), course); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	if calls[0].Query != upsertCourseCypher {
		t.Fatalf("unexpected query:\n%s", calls[0].Query)
	}
	if calls[0].Params["id"] != course.ID {
		t.Errorf("expected id %s, got %v", course.ID, calls[0].Params["id"])
	}
	if calls[0].Params["difficulty"] != course.Difficulty {
		t.Errorf("expected difficulty %s, got %v", course.Difficulty, calls[0].Params["difficulty"])
	}

	if err := repo.UpsertCourse(context.Background(), domain.Course{}); err == nil {
		t.Fatal("expected error for missing course id")
	}
}

func TestRepository_UpsertPrerequisite(t *testing.T) {
	mem := graph.NewMemoryClient()
	repo := New(mem)

	source, target := uuid.NewString(), uuid.NewString()
	if err := repo.UpsertPrerequisite(context.Background(), domain.Prerequisite{
		SourceID: source,
		TargetID: target,
	}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	calls := mem.WriteCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 write query, got %d", len(calls))
	}
	if calls[0].Params["weight"] != 1.0 {
		t.Errorf("expected default weight 1.0, got %v", calls[0].Params["weight"])
	}

	if err := repo.UpsertPrerequisite(context.Background(), domain.Prerequisite{SourceID: source}); err == nil {
		t.Fatal("expected error for missing target id")
	}
}
