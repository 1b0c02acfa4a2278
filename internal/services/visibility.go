package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"encoresocial/internal/domain"
)

type visibilityResolver struct {
	friendshipRepo domain.FriendshipRepository
	attendanceRepo domain.AttendanceRepository
	concertRepo    domain.ConcertRepository
	userRepo       domain.UserRepository
}

// NewVisibilityResolver creates a VisibilityResolver over the friendship and
// attendance repositories.
func NewVisibilityResolver(
	friendshipRepo domain.FriendshipRepository,
	attendanceRepo domain.AttendanceRepository,
	concertRepo domain.ConcertRepository,
	userRepo domain.UserRepository,
) domain.VisibilityResolver {
	return &visibilityResolver{
		friendshipRepo: friendshipRepo,
		attendanceRepo: attendanceRepo,
		concertRepo:    concertRepo,
		userRepo:       userRepo,
	}
}

func (r *visibilityResolver) FriendIDsOf(ctx context.Context, userID string) (map[string]struct{}, error) {
	friendships, err := r.friendshipRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friendships: %w", err)
	}
	ids := make(map[string]struct{}, len(friendships))
	for _, f := range friendships {
		if other := f.CounterpartOf(userID); other != "" {
			ids[other] = struct{}{}
		}
	}
	return ids, nil
}

func (r *visibilityResolver) AttendeesFor(ctx context.Context, concertID, viewerID string, includeViewer bool) ([]*domain.Attendee, error) {
	friendIDs, err := r.FriendIDsOf(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	records, err := r.attendanceRepo.ListGoingByConcert(ctx, concertID)
	if err != nil {
		return nil, fmt.Errorf("list going attendance: %w", err)
	}

	attendees := make([]*domain.Attendee, 0, len(records))
	for _, rec := range records {
		if _, friend := friendIDs[rec.UserID]; !friend {
			if !includeViewer || rec.UserID != viewerID {
				continue
			}
		}
		user, err := r.userRepo.GetByID(ctx, rec.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Deleted account; drop the entry rather than fail the view.
				continue
			}
			return nil, fmt.Errorf("get attendee: %w", err)
		}
		attendees = append(attendees, &domain.Attendee{
			UserID:        user.ID,
			Name:          user.Name,
			Handle:        user.Handle,
			SeatDetails:   rec.SeatDetails,
			TaggedFriends: rec.TaggedFriends,
			Notes:         rec.Notes,
		})
	}
	return attendees, nil
}

func (r *visibilityResolver) GroupBySection(attendees []*domain.Attendee) []domain.VenueSection {
	sections := []domain.VenueSection{}
	index := make(map[string]int)
	for _, a := range attendees {
		if a.SeatDetails == nil || a.SeatDetails.Section == nil {
			continue
		}
		name := strings.ToUpper(strings.TrimSpace(*a.SeatDetails.Section))
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(sections)
			index[name] = i
			sections = append(sections, domain.VenueSection{Name: name})
		}
		sections[i].Attendees = append(sections[i].Attendees, a)
	}
	return sections
}

func (r *visibilityResolver) FriendShows(ctx context.Context, viewerID, friendID string) ([]*domain.AttendanceWithConcert, []*domain.AttendanceWithConcert, error) {
	if viewerID != friendID {
		if _, err := r.friendshipRepo.Get(ctx, domain.PairKey(viewerID, friendID)); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, nil, domain.ErrForbidden
			}
			return nil, nil, fmt.Errorf("get friendship: %w", err)
		}
	}

	records, err := r.attendanceRepo.ListByUser(ctx, friendID)
	if err != nil {
		return nil, nil, fmt.Errorf("list attendance: %w", err)
	}
	going := []*domain.AttendanceWithConcert{}
	interested := []*domain.AttendanceWithConcert{}
	for _, rec := range records {
		concert, err := r.concertRepo.GetByID(ctx, rec.ConcertID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("get concert: %w", err)
		}
		entry := &domain.AttendanceWithConcert{Record: rec, Concert: concert}
		switch rec.Status {
		case domain.StatusGoing:
			going = append(going, entry)
		case domain.StatusInterested:
			interested = append(interested, entry)
		}
	}
	return going, interested, nil
}
