// Package graph abstracts access to the knowledge-graph store holding course
// nodes and prerequisite edges. The path engine never touches the store
// directly; the repository reads a topology snapshot through a Client and
// hands plain records to the engine.
package graph

import (
	"context"
	"errors"
)

// Client is the minimal contract the repository needs from the underlying
// graph database.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result is a simplified query response.
type Result struct {
	Records []Record
}

// Record groups the key-value pairs of a single result row.
type Record map[string]any

// Options configures a graph client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graph URI is required")
