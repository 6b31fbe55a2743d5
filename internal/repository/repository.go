// Package repository loads the course topology from the graph store and
// writes seed data into it. It deals in domain records only; adjacency-graph
// construction belongs to the pathfinding package.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/redmage123/course-creator-sub021/internal/domain"
	"github.com/redmage123/course-creator-sub021/internal/graph"
)

const fetchCoursesCypher = `
MATCH (c:Course)
RETURN c.id AS id, c.difficulty AS difficulty, c.duration AS duration`

const fetchPrerequisitesCypher = `
MATCH (a:Course)-[r:PREREQUISITE_OF]->(b:Course)
RETURN a.id AS sourceId, b.id AS targetId, r.weight AS weight`

const upsertCourseCypher = `
MERGE (c:Course {id: $id})
SET c.title = $title,
    c.difficulty = $difficulty,
    c.duration = $duration,
    c.topics = $topics`

const upsertPrerequisiteCypher = `
MATCH (a:Course {id: $sourceId})
MATCH (b:Course {id: $targetId})
MERGE (a)-[r:PREREQUISITE_OF]->(b)
SET r.weight = $weight`

// Topology is a point-in-time snapshot of the knowledge graph, ready to be
// fed to the path engine's graph builder.
type Topology struct {
	Nodes      []domain.NodeRecord
	Edges      []domain.EdgeRecord
	Properties domain.NodeProperties
}

// Repository encapsulates graph store access.
type Repository struct {
	client graph.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client}
}

// FetchTopology reads all course nodes, their metadata, and all prerequisite
// edges. Edge weights left unset in the store stay nil so the builder applies
// its own default.
func (r *Repository) FetchTopology(ctx context.Context) (Topology, error) {
	coursesRes, err := r.client.ExecuteRead(ctx, fetchCoursesCypher, nil)
	if err != nil {
		return Topology{}, fmt.Errorf("fetch courses: %w", err)
	}

	topology := Topology{
		Properties: make(domain.NodeProperties, len(coursesRes.Records)),
	}

	for _, record := range coursesRes.Records {
		rawID := toString(record["id"])
		if rawID == "" {
			return Topology{}, errors.New("course record missing id")
		}
		topology.Nodes = append(topology.Nodes, domain.NodeRecord{ID: rawID})

		id, err := uuid.Parse(rawID)
		if err != nil {
			return Topology{}, fmt.Errorf("parse course id %q: %w", rawID, err)
		}
		topology.Properties[id] = domain.NodeProps{
			Difficulty: toString(record["difficulty"]),
			Duration:   toFloat(record["duration"]),
		}
	}

	edgesRes, err := r.client.ExecuteRead(ctx, fetchPrerequisitesCypher, nil)
	if err != nil {
		return Topology{}, fmt.Errorf("fetch prerequisites: %w", err)
	}

	for _, record := range edgesRes.Records {
		topology.Edges = append(topology.Edges, domain.EdgeRecord{
			SourceNodeID: toString(record["sourceId"]),
			TargetNodeID: toString(record["targetId"]),
			Weight:       toFloat(record["weight"]),
		})
	}

	return topology, nil
}

// UpsertCourse ensures a course node exists with the latest metadata.
func (r *Repository) UpsertCourse(ctx context.Context, course domain.Course) error {
	if course.ID == "" {
		return errors.New("course id is required")
	}

	params := map[string]any{
		"id":         course.ID,
		"title":      course.Title,
		"difficulty": course.Difficulty,
		"duration":   course.Duration,
		"topics":     course.Topics,
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertCourseCypher, params); err != nil {
		return fmt.Errorf("upsert course %s: %w", course.ID, err)
	}
	return nil
}

// UpsertPrerequisite ensures a directed prerequisite edge exists between two
// courses. A nil weight is stored as the default 1.0.
func (r *Repository) UpsertPrerequisite(ctx context.Context, prereq domain.Prerequisite) error {
	if prereq.SourceID == "" || prereq.TargetID == "" {
		return errors.New("both source and target course IDs are required")
	}

	weight := 1.0
	if prereq.Weight != nil {
		weight = *prereq.Weight
	}
	params := map[string]any{
		"sourceId": prereq.SourceID,
		"targetId": prereq.TargetID,
		"weight":   weight,
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertPrerequisiteCypher, params); err != nil {
		return fmt.Errorf("upsert prerequisite %s -> %s: %w", prereq.SourceID, prereq.TargetID, err)
	}
	return nil
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

// toFloat converts numeric driver values, keeping nil for absent properties.
func toFloat(value any) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case int64:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}
