package domain

// Course is the seed-data representation of a course node used by the
// generator and the ingest pipeline. The repository flattens it into a node
// record plus node properties when writing to the graph store.
type Course struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Difficulty string   `json:"difficulty"`
	Duration   float64  `json:"duration"`
	Topics     []string `json:"topics,omitempty"`
}

// Prerequisite is the seed-data representation of a directed edge between two
// courses.
type Prerequisite struct {
	SourceID string   `json:"sourceId"`
	TargetID string   `json:"targetId"`
	Weight   *float64 `json:"weight,omitempty"`
}

// Catalog bundles a full synthetic dataset.
type Catalog struct {
	Courses       []Course       `json:"courses"`
	Prerequisites []Prerequisite `json:"prerequisites"`
}
