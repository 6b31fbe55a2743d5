package domain

import (
	"github.com/google/uuid"
)

// Difficulty labels recognised by the learning-path engine. Anything else is
// treated as DifficultyIntermediate.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
	DifficultyExpert       = "expert"
)

// NodeRecord declares a course node in the knowledge graph. The ID is the
// string form of a UUID; the builder parses it into the canonical type.
type NodeRecord struct {
	ID string `json:"id"`
}

// EdgeRecord is a directed prerequisite/sequence relation between two nodes.
// Weight is optional and defaults to 1.0 during graph construction.
type EdgeRecord struct {
	SourceNodeID string         `json:"source_node_id"`
	TargetNodeID string         `json:"target_node_id"`
	Weight       *float64       `json:"weight,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// NodeProps carries per-node metadata consumed by path policies and
// enrichment. Duration is a pointer so an absent value is distinguishable
// from an explicit zero: enrichment defaults an absent duration to 0, the
// fastest-path reweighting defaults it to 40.
type NodeProps struct {
	Difficulty string         `json:"difficulty,omitempty"`
	Duration   *float64       `json:"duration,omitempty"`
	Extra      map[string]any `json:"extra,omitempty"`
}

// NodeProperties maps node identifiers to their metadata.
type NodeProperties map[uuid.UUID]NodeProps
