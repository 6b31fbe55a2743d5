package service

import (
	"context"
	"errors"
	"sync"

	"github.com/redmage123/course-creator-sub021/internal/domain"
)

// BatchError accumulates errors produced during bulk ingestion.
type BatchError struct {
	Errors []error
}

func (e *BatchError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

func (e *BatchError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// CatalogWriter is the write surface the ingestor needs from the repository.
type CatalogWriter interface {
	UpsertCourse(ctx context.Context, course domain.Course) error
	UpsertPrerequisite(ctx context.Context, prereq domain.Prerequisite) error
}

// CatalogIngestor bulk-loads course catalogs into the graph store with a
// bounded worker pool.
type CatalogIngestor struct {
	writer  CatalogWriter
	workers int
}

// NewCatalogIngestor creates an ingestor with the provided concurrency.
func NewCatalogIngestor(writer CatalogWriter, workers int) *CatalogIngestor {
	if workers <= 0 {
		workers = 4
	}
	return &CatalogIngestor{writer: writer, workers: workers}
}

// IngestCatalog loads courses first, then prerequisites, so every edge write
// finds both endpoints in place.
func (ci *CatalogIngestor) IngestCatalog(ctx context.Context, catalog domain.Catalog) error {
	if err := ci.IngestCourses(ctx, catalog.Courses); err != nil {
		return err
	}
	return ci.IngestPrerequisites(ctx, catalog.Prerequisites)
}

// IngestCourses upserts the provided courses concurrently.
func (ci *CatalogIngestor) IngestCourses(ctx context.Context, courses []domain.Course) error {
	return ci.run(ctx, len(courses), func(idx int) error {
		return ci.writer.UpsertCourse(ctx, courses[idx])
	})
}

// IngestPrerequisites upserts the provided edges concurrently.
func (ci *CatalogIngestor) IngestPrerequisites(ctx context.Context, prereqs []domain.Prerequisite) error {
	return ci.run(ctx, len(prereqs), func(idx int) error {
		return ci.writer.UpsertPrerequisite(ctx, prereqs[idx])
	})
}

func (ci *CatalogIngestor) run(ctx context.Context, total int, workerFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := workerFn(idx); err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}

	for i := 0; i < ci.workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	var batchErr BatchError
	for err := range errCh {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		batchErr.Errors = append(batchErr.Errors, err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return batchErr.asError()
}
