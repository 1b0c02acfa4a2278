// Package docstore defines the generic document-collection contract the
// engine runs against: id-addressed documents grouped into named
// collections, with merge and full-replace writes, conditional creates, and
// equality/range filtered queries.
package docstore

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors returned by Store implementations.
var (
	ErrNotFound = errors.New("document not found")
	ErrExists   = errors.New("document already exists")
)

// Doc is the field map of a document. Nested objects are nested maps;
// reading a document yields values as decoded by encoding/json
// (string, float64, bool, []any, map[string]any, nil).
type Doc = map[string]any

// Document is a document together with its id.
type Document struct {
	ID   string
	Data Doc
}

// Op is a filter comparison operator.
type Op string

const (
	OpEq  Op = "=="
	OpGte Op = ">="
	OpLte Op = "<="
)

// Filter compares the value at a dotted field path against Value.
type Filter struct {
	Path  string
	Op    Op
	Value any
}

// Query describes a filtered, ordered, limited collection read. An empty
// filter list scans the whole collection.
type Query struct {
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

// Where is shorthand for an equality filter.
func Where(path string, value any) Filter {
	return Filter{Path: path, Op: OpEq, Value: value}
}

// Store is the document-collection interface all persistence goes through.
type Store interface {
	// Get returns the document fields, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Doc, error)
	// Create writes a new document under a caller-specified id and fails
	// with ErrExists when the id is taken. This is the conditional-write
	// primitive uniqueness constraints are built on.
	Create(ctx context.Context, collection, id string, data Doc) error
	// Add writes a new document under a generated id and returns the id.
	Add(ctx context.Context, collection string, data Doc) (string, error)
	// Set fully replaces the document, creating it when absent.
	Set(ctx context.Context, collection, id string, data Doc) error
	// Merge updates only the given fields, creating the document when
	// absent. A nil field value stores an explicit null.
	Merge(ctx context.Context, collection, id string, data Doc) error
	// Delete removes the document; deleting a missing document is a no-op.
	Delete(ctx context.Context, collection, id string) error
	// Query runs the filters (ANDed) over the collection.
	Query(ctx context.Context, collection string, q Query) ([]Document, error)
}

// Lookup walks a dotted path into a document and returns the value at the
// leaf, or (nil, false) when any step is missing or not an object.
func Lookup(d Doc, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = map[string]any(d)
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
