package domain

import (
	"context"
	"time"
)

// RequestStatus is the lifecycle state of a friend request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// RequestAction is a response to a pending friend request.
type RequestAction string

const (
	ActionAccept  RequestAction = "accept"
	ActionDecline RequestAction = "decline"
)

// FriendRequest represents a directed friend request. Its document id is
// RequestKey(from, to), so the store itself guarantees at most one request
// per ordered pair.
// swagger:model FriendRequest
type FriendRequest struct {
	ID         string        `json:"id"`
	FromUserID string        `json:"from_user_id"`
	ToUserID   string        `json:"to_user_id"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Friendship represents a mutual-consent relationship between two users.
// User1 is the original requester, User2 the accepter. The document id is
// PairKey(user1, user2), which is order-independent: a conditional create on
// it enforces at most one friendship per pair.
// swagger:model Friendship
type Friendship struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1_id"`
	User2ID   string    `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CounterpartOf returns the other member of the friendship, or "" when
// userID is not a member.
func (f *Friendship) CounterpartOf(userID string) string {
	switch userID {
	case f.User1ID:
		return f.User2ID
	case f.User2ID:
		return f.User1ID
	}
	return ""
}

// PairKey returns the canonical, order-independent key for a user pair.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}

// RequestKey returns the ordered-pair key for a friend request from -> to.
func RequestKey(from, to string) string {
	return from + "_" + to
}

// FriendRequestRepository defines storage for friend request documents.
type FriendRequestRepository interface {
	Get(ctx context.Context, id string) (*FriendRequest, error)
	// Create fails with ErrExists when a request for the ordered pair
	// already exists, whatever its status.
	Create(ctx context.Context, req *FriendRequest) error
	// Replace overwrites the whole document (used to re-send after a decline).
	Replace(ctx context.Context, req *FriendRequest) error
	SetStatus(ctx context.Context, id string, status RequestStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	ListPendingTo(ctx context.Context, userID string) ([]*FriendRequest, error)
	ListPendingFrom(ctx context.Context, userID string) ([]*FriendRequest, error)
}

// FriendshipRepository defines storage for friendship documents.
type FriendshipRepository interface {
	Get(ctx context.Context, id string) (*Friendship, error)
	// Create fails with ErrExists when a friendship for the pair already exists.
	Create(ctx context.Context, f *Friendship) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*Friendship, error)
}

// FriendWithUser bundles a friendship with the counterpart's user document.
type FriendWithUser struct {
	Friendship *Friendship `json:"friendship"`
	Friend     *User       `json:"friend"`
}

// FriendRequestWithUser bundles a request with the counterpart user document:
// FromUser for incoming requests, ToUser for outgoing ones.
type FriendRequestWithUser struct {
	Request  *FriendRequest `json:"request"`
	FromUser *User          `json:"from_user,omitempty"`
	ToUser   *User          `json:"to_user,omitempty"`
}

// FriendshipService owns the friend-request lifecycle and friendship
// membership.
type FriendshipService interface {
	SendRequest(ctx context.Context, fromID, toID string) (*FriendRequest, error)
	RespondToRequest(ctx context.Context, requestID, responderID string, action RequestAction) error
	CancelRequest(ctx context.Context, fromID, toID string) error
	RemoveFriendship(ctx context.Context, friendshipID, callerID string) error
	ListFriends(ctx context.Context, userID string) ([]*FriendWithUser, error)
	ListRequests(ctx context.Context, userID string) (incoming, outgoing []*FriendRequestWithUser, err error)
}
