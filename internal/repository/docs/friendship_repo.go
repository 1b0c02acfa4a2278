package docs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"encoresocial/internal/docstore"
	"encoresocial/internal/domain"
)

type friendRequestRepository struct {
	store docstore.Store
}

// NewFriendRequestRepository returns a domain.FriendRequestRepository backed
// by the friend_requests collection.
func NewFriendRequestRepository(store docstore.Store) domain.FriendRequestRepository {
	return &friendRequestRepository{store: store}
}

func requestToDoc(req *domain.FriendRequest) docstore.Doc {
	return docstore.Doc{
		"fromUserId": req.FromUserID,
		"toUserId":   req.ToUserID,
		"status":     string(req.Status),
		"createdAt":  encodeTime(req.CreatedAt),
		"updatedAt":  encodeTime(req.UpdatedAt),
	}
}

func docToRequest(id string, d docstore.Doc) *domain.FriendRequest {
	return &domain.FriendRequest{
		ID:         id,
		FromUserID: str(d, "fromUserId"),
		ToUserID:   str(d, "toUserId"),
		Status:     domain.RequestStatus(str(d, "status")),
		CreatedAt:  timeVal(d, "createdAt"),
		UpdatedAt:  timeVal(d, "updatedAt"),
	}
}

func (r *friendRequestRepository) Get(ctx context.Context, id string) (*domain.FriendRequest, error) {
	d, err := r.store.Get(ctx, ColFriendRequests, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return docToRequest(id, d), nil
}

func (r *friendRequestRepository) Create(ctx context.Context, req *domain.FriendRequest) error {
	err := r.store.Create(ctx, ColFriendRequests, req.ID, requestToDoc(req))
	if err != nil {
		if errors.Is(err, docstore.ErrExists) {
			return domain.ErrExists
		}
		return fmt.Errorf("create friend request: %w", err)
	}
	return nil
}

func (r *friendRequestRepository) Replace(ctx context.Context, req *domain.FriendRequest) error {
	return r.store.Set(ctx, ColFriendRequests, req.ID, requestToDoc(req))
}

func (r *friendRequestRepository) SetStatus(ctx context.Context, id string, status domain.RequestStatus, updatedAt time.Time) error {
	return r.store.Merge(ctx, ColFriendRequests, id, docstore.Doc{
		"status":    string(status),
		"updatedAt": encodeTime(updatedAt),
	})
}

func (r *friendRequestRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColFriendRequests, id)
}

func (r *friendRequestRepository) listPending(ctx context.Context, field, userID string) ([]*domain.FriendRequest, error) {
	docs, err := r.store.Query(ctx, ColFriendRequests, docstore.Query{
		Filters: []docstore.Filter{
			docstore.Where(field, userID),
			docstore.Where("status", string(domain.RequestPending)),
		},
	})
	if err != nil {
		return nil, err
	}
	reqs := make([]*domain.FriendRequest, 0, len(docs))
	for _, d := range docs {
		reqs = append(reqs, docToRequest(d.ID, d.Data))
	}
	return reqs, nil
}

func (r *friendRequestRepository) ListPendingTo(ctx context.Context, userID string) ([]*domain.FriendRequest, error) {
	return r.listPending(ctx, "toUserId", userID)
}

func (r *friendRequestRepository) ListPendingFrom(ctx context.Context, userID string) ([]*domain.FriendRequest, error) {
	return r.listPending(ctx, "fromUserId", userID)
}

type friendshipRepository struct {
	store docstore.Store
}

// NewFriendshipRepository returns a domain.FriendshipRepository backed by
// the friendships collection.
func NewFriendshipRepository(store docstore.Store) domain.FriendshipRepository {
	return &friendshipRepository{store: store}
}

func docToFriendship(id string, d docstore.Doc) *domain.Friendship {
	return &domain.Friendship{
		ID:        id,
		User1ID:   str(d, "user1Id"),
		User2ID:   str(d, "user2Id"),
		CreatedAt: timeVal(d, "createdAt"),
	}
}

func (r *friendshipRepository) Get(ctx context.Context, id string) (*domain.Friendship, error) {
	d, err := r.store.Get(ctx, ColFriendships, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return docToFriendship(id, d), nil
}

func (r *friendshipRepository) Create(ctx context.Context, f *domain.Friendship) error {
	err := r.store.Create(ctx, ColFriendships, f.ID, docstore.Doc{
		"user1Id":   f.User1ID,
		"user2Id":   f.User2ID,
		"createdAt": encodeTime(f.CreatedAt),
	})
	if err != nil {
		if errors.Is(err, docstore.ErrExists) {
			return domain.ErrExists
		}
		return fmt.Errorf("create friendship: %w", err)
	}
	return nil
}

func (r *friendshipRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColFriendships, id)
}

func (r *friendshipRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Friendship, error) {
	// The user can sit on either side of the pair; one equality query per
	// side instead of a full-collection scan.
	var out []*domain.Friendship
	for _, field := range []string{"user1Id", "user2Id"} {
		docs, err := r.store.Query(ctx, ColFriendships, docstore.Query{
			Filters: []docstore.Filter{docstore.Where(field, userID)},
		})
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			out = append(out, docToFriendship(d.ID, d.Data))
		}
	}
	if out == nil {
		out = []*domain.Friendship{}
	}
	return out, nil
}
