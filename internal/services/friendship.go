package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"encoresocial/internal/domain"
)

type friendshipService struct {
	requestRepo    domain.FriendRequestRepository
	friendshipRepo domain.FriendshipRepository
	userRepo       domain.UserRepository
	notifier       domain.Notifier
}

// NewFriendshipService creates a FriendshipService with the given repositories.
func NewFriendshipService(
	requestRepo domain.FriendRequestRepository,
	friendshipRepo domain.FriendshipRepository,
	userRepo domain.UserRepository,
	notifier domain.Notifier,
) domain.FriendshipService {
	return &friendshipService{
		requestRepo:    requestRepo,
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

func (s *friendshipService) SendRequest(ctx context.Context, fromID, toID string) (*domain.FriendRequest, error) {
	if fromID == toID {
		return nil, fmt.Errorf("%w: cannot send a friend request to yourself", domain.ErrInvalidInput)
	}
	if _, err := s.userRepo.GetByID(ctx, toID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get recipient: %w", err)
	}

	if _, err := s.friendshipRepo.Get(ctx, domain.PairKey(fromID, toID)); err == nil {
		return nil, domain.ErrAlreadyFriends
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get friendship: %w", err)
	}

	// A pending request in the opposite direction means the other user got
	// there first; the caller should accept it instead.
	if reverse, err := s.requestRepo.Get(ctx, domain.RequestKey(toID, fromID)); err == nil {
		if reverse.Status == domain.RequestPending {
			return nil, domain.ErrReciprocalPending
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get reverse request: %w", err)
	}

	now := time.Now()
	req := &domain.FriendRequest{
		ID:         domain.RequestKey(fromID, toID),
		FromUserID: fromID,
		ToUserID:   toID,
		Status:     domain.RequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := s.requestRepo.Create(ctx, req)
	if errors.Is(err, domain.ErrExists) {
		// The ordered pair already has a request document. Pending means a
		// duplicate send; accepted means the friendship record is the source
		// of truth; declined may be replaced by a fresh pending request.
		existing, getErr := s.requestRepo.Get(ctx, req.ID)
		if getErr != nil {
			return nil, fmt.Errorf("get existing request: %w", getErr)
		}
		switch existing.Status {
		case domain.RequestPending:
			return nil, domain.ErrDuplicateRequest
		case domain.RequestAccepted:
			return nil, domain.ErrAlreadyFriends
		}
		if err := s.requestRepo.Replace(ctx, req); err != nil {
			return nil, fmt.Errorf("replace declined request: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("create friend request: %w", err)
	}

	s.notifyRequestReceived(ctx, fromID, toID)
	return req, nil
}

func (s *friendshipService) RespondToRequest(ctx context.Context, requestID, responderID string, action domain.RequestAction) error {
	req, err := s.requestRepo.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get friend request: %w", err)
	}
	if req.ToUserID != responderID {
		return domain.ErrForbidden
	}
	if req.Status != domain.RequestPending {
		return domain.ErrNotFound
	}

	now := time.Now()
	switch action {
	case domain.ActionDecline:
		if err := s.requestRepo.SetStatus(ctx, req.ID, domain.RequestDeclined, now); err != nil {
			return fmt.Errorf("decline request: %w", err)
		}
		return nil
	case domain.ActionAccept:
	default:
		return fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, action)
	}

	// Two users who requested each other simultaneously hold two independent
	// pending documents. Accepting one while the reverse is still pending is
	// ambiguous, so surface the conflict without mutating anything.
	if reverse, err := s.requestRepo.Get(ctx, domain.RequestKey(req.ToUserID, req.FromUserID)); err == nil {
		if reverse.Status == domain.RequestPending {
			return domain.ErrReciprocalConflict
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get reverse request: %w", err)
	}

	friendship := &domain.Friendship{
		ID:        domain.PairKey(req.FromUserID, req.ToUserID),
		User1ID:   req.FromUserID,
		User2ID:   req.ToUserID,
		CreatedAt: now,
	}
	// ErrExists means the friendship already materialized; the accept still
	// completes the same way, marking the request done and notifying.
	if err := s.friendshipRepo.Create(ctx, friendship); err != nil && !errors.Is(err, domain.ErrExists) {
		return fmt.Errorf("create friendship: %w", err)
	}
	if err := s.requestRepo.SetStatus(ctx, req.ID, domain.RequestAccepted, now); err != nil {
		return fmt.Errorf("mark request accepted: %w", err)
	}

	s.notifyRequestAccepted(ctx, req.FromUserID, req.ToUserID)
	return nil
}

func (s *friendshipService) CancelRequest(ctx context.Context, fromID, toID string) error {
	id := domain.RequestKey(fromID, toID)
	req, err := s.requestRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get friend request: %w", err)
	}
	if req.Status != domain.RequestPending {
		return nil
	}
	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete friend request: %w", err)
	}
	return nil
}

func (s *friendshipService) RemoveFriendship(ctx context.Context, friendshipID, callerID string) error {
	friendship, err := s.friendshipRepo.Get(ctx, friendshipID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get friendship: %w", err)
	}
	other := friendship.CounterpartOf(callerID)
	if other == "" {
		return domain.ErrNotFound
	}
	if err := s.friendshipRepo.Delete(ctx, friendshipID); err != nil {
		return fmt.Errorf("delete friendship: %w", err)
	}
	// Drop the request documents in both directions so a future request
	// between the pair starts clean.
	for _, id := range []string{
		domain.RequestKey(callerID, other),
		domain.RequestKey(other, callerID),
	} {
		if err := s.requestRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete friend request: %w", err)
		}
	}
	return nil
}

func (s *friendshipService) ListFriends(ctx context.Context, userID string) ([]*domain.FriendWithUser, error) {
	friendships, err := s.friendshipRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friendships: %w", err)
	}
	result := make([]*domain.FriendWithUser, 0, len(friendships))
	for _, f := range friendships {
		other := f.CounterpartOf(userID)
		if other == "" {
			continue
		}
		friend, err := s.userRepo.GetByID(ctx, other)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Deleted account; skip the orphaned friendship.
				continue
			}
			return nil, fmt.Errorf("get friend: %w", err)
		}
		result = append(result, &domain.FriendWithUser{Friendship: f, Friend: friend})
	}
	return result, nil
}

func (s *friendshipService) ListRequests(ctx context.Context, userID string) ([]*domain.FriendRequestWithUser, []*domain.FriendRequestWithUser, error) {
	pendingTo, err := s.requestRepo.ListPendingTo(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list incoming requests: %w", err)
	}
	incoming := make([]*domain.FriendRequestWithUser, 0, len(pendingTo))
	for _, req := range pendingTo {
		from, err := s.userRepo.GetByID(ctx, req.FromUserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("get requester: %w", err)
		}
		incoming = append(incoming, &domain.FriendRequestWithUser{Request: req, FromUser: from})
	}

	pendingFrom, err := s.requestRepo.ListPendingFrom(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list outgoing requests: %w", err)
	}
	outgoing := make([]*domain.FriendRequestWithUser, 0, len(pendingFrom))
	for _, req := range pendingFrom {
		to, err := s.userRepo.GetByID(ctx, req.ToUserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("get recipient: %w", err)
		}
		outgoing = append(outgoing, &domain.FriendRequestWithUser{Request: req, ToUser: to})
	}
	return incoming, outgoing, nil
}

func (s *friendshipService) notifyRequestReceived(ctx context.Context, fromID, toID string) {
	if s.notifier == nil {
		return
	}
	from, err := s.userRepo.GetByID(ctx, fromID)
	if err != nil {
		return
	}
	to, err := s.userRepo.GetByID(ctx, toID)
	if err != nil {
		return
	}
	s.notifier.FriendRequestReceived(ctx, to, from)
}

func (s *friendshipService) notifyRequestAccepted(ctx context.Context, requesterID, accepterID string) {
	if s.notifier == nil {
		return
	}
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return
	}
	accepter, err := s.userRepo.GetByID(ctx, accepterID)
	if err != nil {
		return
	}
	s.notifier.FriendRequestAccepted(ctx, requester, accepter)
}
