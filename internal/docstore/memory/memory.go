// Package memory provides an in-memory docstore.Store used by tests and
// local development.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"encoresocial/internal/docstore"
)

// Store is a mutex-guarded in-memory document store.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]docstore.Doc
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string]map[string]docstore.Doc)}
}

var _ docstore.Store = (*Store)(nil)

// col returns the collection map, creating it on first use. Callers must
// hold the write lock; read paths index s.collections directly so a missing
// collection reads as empty without mutating the map.
func (s *Store) col(name string) map[string]docstore.Doc {
	c, ok := s.collections[name]
	if !ok {
		c = make(map[string]docstore.Doc)
		s.collections[name] = c
	}
	return c
}

// clone deep-copies a document through a JSON round trip so callers never
// share mutable state with the store.
func clone(d docstore.Doc) docstore.Doc {
	if d == nil {
		return nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		panic(fmt.Sprintf("memory store: unmarshalable document: %v", err))
	}
	var out docstore.Doc
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("memory store: clone: %v", err))
	}
	return out
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return clone(doc), nil
}

func (s *Store) Create(ctx context.Context, collection, id string, data docstore.Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.col(collection)
	if _, ok := c[id]; ok {
		return docstore.ErrExists
	}
	c[id] = clone(data)
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, data docstore.Doc) (string, error) {
	id := uuid.NewString()
	if err := s.Create(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data docstore.Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.col(collection)[id] = clone(data)
	return nil
}

func (s *Store) Merge(ctx context.Context, collection, id string, data docstore.Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.col(collection)
	doc, ok := c[id]
	if !ok {
		doc = docstore.Doc{}
	}
	for k, v := range clone(data) {
		doc[k] = v
	}
	c[id] = doc
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.col(collection), id)
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, q docstore.Query) ([]docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []docstore.Document
	for id, doc := range s.collections[collection] {
		if matches(doc, q.Filters) {
			out = append(out, docstore.Document{ID: id, Data: clone(doc)})
		}
	}

	// Stable scan order even without an explicit sort key.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if q.OrderBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			a, _ := docstore.Lookup(out[i].Data, q.OrderBy)
			b, _ := docstore.Lookup(out[j].Data, q.OrderBy)
			if q.Descending {
				return compare(a, b) > 0
			}
			return compare(a, b) < 0
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func matches(doc docstore.Doc, filters []docstore.Filter) bool {
	for _, f := range filters {
		v, ok := docstore.Lookup(doc, f.Path)
		if !ok {
			return false
		}
		c := compare(v, f.Value)
		switch f.Op {
		case docstore.OpEq:
			if c != 0 {
				return false
			}
		case docstore.OpGte:
			if c < 0 {
				return false
			}
		case docstore.OpLte:
			if c > 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func compare(a, b any) int {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	as := toString(a)
	bs := toString(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
