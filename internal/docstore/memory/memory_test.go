package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"encoresocial/internal/docstore"
)

func TestStore_CreateGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	doc := docstore.Doc{"user1Id": "alice", "user2Id": "bob"}
	if err := s.Create(ctx, "friendships", "alice_bob", doc); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Get(ctx, "friendships", "alice_bob")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["user1Id"] != "alice" {
		t.Fatalf("wrong doc: %v", got)
	}

	// Conditional create refuses a taken id.
	if err := s.Create(ctx, "friendships", "alice_bob", doc); !errors.Is(err, docstore.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	if _, err := s.Get(ctx, "friendships", "missing"); !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_DocumentsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := New()

	doc := docstore.Doc{"status": "pending"}
	if err := s.Create(ctx, "friend_requests", "a_b", doc); err != nil {
		t.Fatalf("create: %v", err)
	}
	doc["status"] = "mutated"

	got, err := s.Get(ctx, "friend_requests", "a_b")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["status"] != "pending" {
		t.Fatalf("caller mutation leaked into the store: %v", got)
	}

	got["status"] = "mutated"
	again, _ := s.Get(ctx, "friend_requests", "a_b")
	if again["status"] != "pending" {
		t.Fatalf("read mutation leaked into the store: %v", again)
	}
}

func TestStore_Add(t *testing.T) {
	ctx := context.Background()
	s := New()

	id1, err := s.Add(ctx, "users", docstore.Doc{"handle": "alice"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	id2, err := s.Add(ctx, "users", docstore.Doc{"handle": "bob"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id1 == "" || id1 == id2 {
		t.Fatalf("expected distinct generated ids, got %q and %q", id1, id2)
	}
}

func TestStore_SetAndMerge(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Set(ctx, "friend_requests", "a_b", docstore.Doc{"status": "pending", "fromUserId": "a"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Merge overlays the given keys and keeps the rest.
	if err := s.Merge(ctx, "friend_requests", "a_b", docstore.Doc{"status": "accepted"}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	got, _ := s.Get(ctx, "friend_requests", "a_b")
	if got["status"] != "accepted" || got["fromUserId"] != "a" {
		t.Fatalf("merge wrong: %v", got)
	}

	// Set replaces the whole document.
	if err := s.Set(ctx, "friend_requests", "a_b", docstore.Doc{"status": "declined"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ = s.Get(ctx, "friend_requests", "a_b")
	if _, ok := got["fromUserId"]; ok {
		t.Fatalf("set did not replace: %v", got)
	}

	// Merge on a missing id creates the document.
	if err := s.Merge(ctx, "friend_requests", "new", docstore.Doc{"status": "pending"}); err != nil {
		t.Fatalf("merge create: %v", err)
	}
	if _, err := s.Get(ctx, "friend_requests", "new"); err != nil {
		t.Fatalf("merged doc missing: %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Set(ctx, "user_attendance", "a_c1", docstore.Doc{"status": "going"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Delete(ctx, "user_attendance", "a_c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "user_attendance", "a_c1"); !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting again stays silent.
	if err := s.Delete(ctx, "user_attendance", "a_c1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestStore_ConcurrentReadsOfMissingCollection(t *testing.T) {
	ctx := context.Background()
	s := New()

	// Parallel Get and Query calls against collections nothing has written to
	// must not mutate shared state. Run with -race.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			collection := fmt.Sprintf("collection-%d", n%4)
			for j := 0; j < 50; j++ {
				if _, err := s.Get(ctx, collection, "missing"); !errors.Is(err, docstore.ErrNotFound) {
					t.Errorf("expected ErrNotFound, got %v", err)
				}
				docs, err := s.Query(ctx, collection, docstore.Query{})
				if err != nil {
					t.Errorf("query: %v", err)
				}
				if len(docs) != 0 {
					t.Errorf("expected empty collection, got %d docs", len(docs))
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestStore_Query(t *testing.T) {
	ctx := context.Background()
	s := New()

	seed := map[string]docstore.Doc{
		"c1": {"name": "A", "dates": map[string]any{"start": map[string]any{"localDate": "2026-09-10"}}, "city": "Austin"},
		"c2": {"name": "B", "dates": map[string]any{"start": map[string]any{"localDate": "2026-09-05"}}, "city": "Denver"},
		"c3": {"name": "C", "dates": map[string]any{"start": map[string]any{"localDate": "2026-08-01"}}, "city": "Austin"},
	}
	for id, doc := range seed {
		if err := s.Set(ctx, "concerts", id, doc); err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	t.Run("equality filter", func(t *testing.T) {
		docs, err := s.Query(ctx, "concerts", docstore.Query{
			Filters: []docstore.Filter{docstore.Where("city", "Austin")},
		})
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if len(docs) != 2 {
			t.Fatalf("expected 2 docs, got %d", len(docs))
		}
	})

	t.Run("range filter on dotted path with ordering", func(t *testing.T) {
		docs, err := s.Query(ctx, "concerts", docstore.Query{
			Filters: []docstore.Filter{
				{Path: "dates.start.localDate", Op: docstore.OpGte, Value: "2026-09-01"},
			},
			OrderBy: "dates.start.localDate",
		})
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if len(docs) != 2 {
			t.Fatalf("expected 2 docs, got %d", len(docs))
		}
		if docs[0].ID != "c2" || docs[1].ID != "c1" {
			t.Fatalf("wrong order: %s, %s", docs[0].ID, docs[1].ID)
		}
	})

	t.Run("descending with limit", func(t *testing.T) {
		docs, err := s.Query(ctx, "concerts", docstore.Query{
			OrderBy:    "dates.start.localDate",
			Descending: true,
			Limit:      1,
		})
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if len(docs) != 1 || docs[0].ID != "c1" {
			t.Fatalf("expected newest only, got %+v", docs)
		}
	})

	t.Run("missing filter path excludes the doc", func(t *testing.T) {
		docs, err := s.Query(ctx, "concerts", docstore.Query{
			Filters: []docstore.Filter{docstore.Where("venue.name", "Arena")},
		})
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if len(docs) != 0 {
			t.Fatalf("expected no docs, got %d", len(docs))
		}
	})

	t.Run("no filters scans the collection in id order", func(t *testing.T) {
		docs, err := s.Query(ctx, "concerts", docstore.Query{})
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if len(docs) != 3 {
			t.Fatalf("expected 3 docs, got %d", len(docs))
		}
		if docs[0].ID != "c1" || docs[2].ID != "c3" {
			t.Fatalf("wrong scan order: %+v", docs)
		}
	})
}
