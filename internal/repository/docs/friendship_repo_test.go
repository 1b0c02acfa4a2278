package docs

import (
	"context"
	"errors"
	"testing"
	"time"

	"encoresocial/internal/docstore/memory"
	"encoresocial/internal/domain"
)

func pendingRequest(from, to string, at time.Time) *domain.FriendRequest {
	return &domain.FriendRequest{
		ID:         domain.RequestKey(from, to),
		FromUserID: from,
		ToUserID:   to,
		Status:     domain.RequestPending,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
}

func TestFriendRequestRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewFriendRequestRepository(memory.New())
	now := time.Now()

	req := pendingRequest("alice", "bob", now)
	if err := repo.Create(ctx, req); err != nil {
		t.Fatalf("create: %v", err)
	}
	// One document per ordered pair, enforced by the store.
	if err := repo.Create(ctx, pendingRequest("alice", "bob", now)); !errors.Is(err, domain.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	// The reverse direction is a separate document.
	if err := repo.Create(ctx, pendingRequest("bob", "alice", now)); err != nil {
		t.Fatalf("create reverse: %v", err)
	}

	got, err := repo.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FromUserID != "alice" || got.ToUserID != "bob" || got.Status != domain.RequestPending {
		t.Fatalf("roundtrip wrong: %+v", got)
	}

	later := now.Add(time.Minute)
	if err := repo.SetStatus(ctx, req.ID, domain.RequestDeclined, later); err != nil {
		t.Fatalf("set status: %v", err)
	}
	got, _ = repo.Get(ctx, req.ID)
	if got.Status != domain.RequestDeclined {
		t.Fatalf("status not updated: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("updatedAt not advanced")
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("createdAt touched by status update")
	}

	// Replace swaps the whole document (re-send after decline).
	fresh := pendingRequest("alice", "bob", later)
	if err := repo.Replace(ctx, fresh); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, _ = repo.Get(ctx, req.ID)
	if got.Status != domain.RequestPending || !got.CreatedAt.Equal(later) {
		t.Fatalf("replace wrong: %+v", got)
	}

	if err := repo.Delete(ctx, req.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, req.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFriendRequestRepository_ListPending(t *testing.T) {
	ctx := context.Background()
	repo := NewFriendRequestRepository(memory.New())
	now := time.Now()

	seed := []*domain.FriendRequest{
		pendingRequest("alice", "bob", now),
		pendingRequest("carol", "bob", now),
		pendingRequest("bob", "dave", now),
	}
	declined := pendingRequest("eve", "bob", now)
	declined.Status = domain.RequestDeclined
	seed = append(seed, declined)
	for _, r := range seed {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	incoming, err := repo.ListPendingTo(ctx, "bob")
	if err != nil {
		t.Fatalf("list pending to: %v", err)
	}
	if len(incoming) != 2 {
		t.Fatalf("expected 2 incoming, got %d", len(incoming))
	}
	for _, r := range incoming {
		if r.ToUserID != "bob" || r.Status != domain.RequestPending {
			t.Fatalf("wrong entry: %+v", r)
		}
	}

	outgoing, err := repo.ListPendingFrom(ctx, "bob")
	if err != nil {
		t.Fatalf("list pending from: %v", err)
	}
	if len(outgoing) != 1 || outgoing[0].ToUserID != "dave" {
		t.Fatalf("wrong outgoing: %+v", outgoing)
	}
}

func TestFriendshipRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFriendshipRepository(memory.New())
	now := time.Now()

	f := &domain.Friendship{
		ID:        domain.PairKey("bob", "alice"),
		User1ID:   "bob",
		User2ID:   "alice",
		CreatedAt: now,
	}
	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("create: %v", err)
	}

	// The canonical key makes the pair unique regardless of direction.
	dup := &domain.Friendship{ID: domain.PairKey("alice", "bob"), User1ID: "alice", User2ID: "bob", CreatedAt: now}
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	got, err := repo.Get(ctx, f.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.User1ID != "bob" || got.User2ID != "alice" {
		t.Fatalf("sides lost: %+v", got)
	}

	other := &domain.Friendship{ID: domain.PairKey("alice", "carol"), User1ID: "carol", User2ID: "alice", CreatedAt: now}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("create: %v", err)
	}

	// alice appears as user2 in both; bob only on one side.
	aliceFriends, err := repo.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(aliceFriends) != 2 {
		t.Fatalf("expected 2 friendships for alice, got %d", len(aliceFriends))
	}
	bobFriends, err := repo.ListByUser(ctx, "bob")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bobFriends) != 1 {
		t.Fatalf("expected 1 friendship for bob, got %d", len(bobFriends))
	}

	if err := repo.Delete(ctx, f.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, f.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
