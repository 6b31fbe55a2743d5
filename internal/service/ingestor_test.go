package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/domain"
)

type stubWriter struct {
	mu       sync.Mutex
	courses  []string
	prereqs  []string
	courseFn func(domain.Course) error
	prereqFn func(domain.Prerequisite) error
}

func (w *stubWriter) UpsertCourse(_ context.Context, course domain.Course) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.courses = append(w.courses, course.ID)
	if w.courseFn != nil {
		return w.courseFn(course)
	}
	return nil
}

func (w *stubWriter) UpsertPrerequisite(_ context.Context, prereq domain.Prerequisite) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.prereqs = append(w.prereqs, prereq.SourceID+"->"+prereq.TargetID)
	if w.prereqFn != nil {
		return w.prereqFn(prereq)
	}
	return nil
}

func testCatalog(courses, prereqs int) domain.Catalog {
	catalog := domain.Catalog{}
	ids := make([]string, courses)
	for i := 0; i < courses; i++ {
		ids[i] = uuid.NewString()
		catalog.Courses = append(catalog.Courses, domain.Course{
			ID:         ids[i],
			Title:      "course",
			Difficulty: domain.DifficultyIntermediate,
			Duration:   30,
		})
	}
	for i := 0; i < prereqs && i+1 < courses; i++ {
		catalog.Prerequisites = append(catalog.Prerequisites, domain.Prerequisite{
			SourceID: ids[i],
			TargetID: ids[i+1],
		})
	}
	return catalog
}

func TestCatalogIngestor_IngestCatalog(t *testing.T) {
	writer := &stubWriter{}
	ingestor := NewCatalogIngestor(writer, 4)

	catalog := testCatalog(20, 19)
	if err := ingestor.IngestCatalog(context.Background(), catalog); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(writer.courses) != 20 {
		t.Fatalf("expected 20 course upserts, got %d", len(writer.courses))
	}
	if len(writer.prereqs) != 19 {
		t.Fatalf("expected 19 prerequisite upserts, got %d", len(writer.prereqs))
	}
}

func TestCatalogIngestor_AggregatesErrors(t *testing.T) {
	failing := errors.New("write rejected")
	writer := &stubWriter{
		courseFn: func(course domain.Course) error {
			return failing
		},
	}
	ingestor := NewCatalogIngestor(writer, 2)

	err := ingestor.IngestCourses(context.Background(), testCatalog(3, 0).Courses)
	if err == nil {
		t.Fatal("expected aggregated error")
	}

	var batchErr *BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("expected BatchError, got %T", err)
	}
	if len(batchErr.Errors) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d", len(batchErr.Errors))
	}
	if !strings.Contains(err.Error(), "write rejected") {
		t.Fatalf("expected message to mention cause, got %q", err.Error())
	}
}

func TestCatalogIngestor_EmptyInput(t *testing.T) {
	ingestor := NewCatalogIngestor(&stubWriter{}, 0)
	if err := ingestor.IngestCourses(context.Background(), nil); err != nil {
		t.Fatalf("expected nil for empty input, got %v", err)
	}
}

func TestCatalogIngestor_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	writer := &stubWriter{}
	ingestor := NewCatalogIngestor(writer, 2)

	err := ingestor.IngestCourses(ctx, testCatalog(50, 0).Courses)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
