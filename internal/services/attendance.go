package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"encoresocial/internal/domain"
)

type attendanceService struct {
	attendanceRepo domain.AttendanceRepository
	summaryRepo    domain.AttendanceSummaryRepository
	concertRepo    domain.ConcertRepository
	logger         *slog.Logger
}

// NewAttendanceService creates an AttendanceService with the given repositories.
func NewAttendanceService(
	attendanceRepo domain.AttendanceRepository,
	summaryRepo domain.AttendanceSummaryRepository,
	concertRepo domain.ConcertRepository,
	logger *slog.Logger,
) domain.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		summaryRepo:    summaryRepo,
		concertRepo:    concertRepo,
		logger:         logger,
	}
}

func trimmedPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (s *attendanceService) SetStatus(ctx context.Context, userID, concertID string, status domain.AttendanceStatus, details *domain.GoingDetails) (*domain.AttendanceRecord, error) {
	if status != domain.StatusInterested && status != domain.StatusGoing {
		return nil, fmt.Errorf("%w: status must be %q or %q", domain.ErrInvalidInput, domain.StatusInterested, domain.StatusGoing)
	}
	if _, err := s.concertRepo.GetByID(ctx, concertID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get concert: %w", err)
	}

	now := time.Now()
	rec := &domain.AttendanceRecord{
		ID:        domain.AttendanceKey(userID, concertID),
		UserID:    userID,
		ConcertID: concertID,
		Status:    status,
		UpdatedAt: now,
	}
	// Switching to "interested" clears any seat, tag, and note details left
	// over from a previous "going".
	if status == domain.StatusGoing && details != nil {
		seat := &domain.SeatDetails{
			Section:    trimmedPtr(details.Section),
			Row:        trimmedPtr(details.Row),
			SeatNumber: trimmedPtr(details.SeatNumber),
		}
		if !seat.Empty() {
			rec.SeatDetails = seat
		}
		rec.TaggedFriends = details.TaggedFriends
		rec.Notes = trimmedPtr(details.Notes)
	}

	if _, err := s.attendanceRepo.Get(ctx, rec.ID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get attendance: %w", err)
		}
		rec.CreatedAt = now
	}
	if err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("upsert attendance: %w", err)
	}
	s.recompute(ctx, concertID)
	return rec, nil
}

func (s *attendanceService) RemoveStatus(ctx context.Context, userID, concertID string) error {
	if err := s.attendanceRepo.Delete(ctx, domain.AttendanceKey(userID, concertID)); err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	s.recompute(ctx, concertID)
	return nil
}

// recompute refreshes the denormalized summary after a record change. The
// record write already succeeded; a stale summary self-heals on the next
// change, so failures are logged rather than returned.
func (s *attendanceService) recompute(ctx context.Context, concertID string) {
	if _, err := s.RecomputeSummary(ctx, concertID); err != nil {
		s.logger.ErrorContext(ctx, "recompute attendance summary", "concert_id", concertID, "err", err)
	}
}

func (s *attendanceService) RecomputeSummary(ctx context.Context, concertID string) (*domain.AttendanceSummary, error) {
	records, err := s.attendanceRepo.ListByConcert(ctx, concertID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	summary := &domain.AttendanceSummary{
		ConcertID: concertID,
		Attendees: domain.AttendeeLists{
			Going:      []string{},
			Interested: []string{},
			Maybe:      []string{},
		},
		LastUpdated: time.Now(),
	}
	for _, rec := range records {
		switch rec.Status {
		case domain.StatusGoing:
			summary.Attendees.Going = append(summary.Attendees.Going, rec.UserID)
		case domain.StatusInterested:
			summary.Attendees.Interested = append(summary.Attendees.Interested, rec.UserID)
		case domain.StatusMaybe:
			summary.Attendees.Maybe = append(summary.Attendees.Maybe, rec.UserID)
		}
	}
	summary.AttendeeCounts = domain.AttendeeCounts{
		Going:      len(summary.Attendees.Going),
		Interested: len(summary.Attendees.Interested),
		Maybe:      len(summary.Attendees.Maybe),
	}
	if err := s.summaryRepo.Save(ctx, summary); err != nil {
		return nil, fmt.Errorf("save summary: %w", err)
	}
	return summary, nil
}

func (s *attendanceService) GetSummary(ctx context.Context, concertID string) (*domain.AttendanceSummary, error) {
	summary, err := s.summaryRepo.Get(ctx, concertID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// No record ever touched this concert; an empty summary is the
			// correct aggregate.
			return &domain.AttendanceSummary{
				ConcertID: concertID,
				Attendees: domain.AttendeeLists{
					Going:      []string{},
					Interested: []string{},
					Maybe:      []string{},
				},
			}, nil
		}
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return summary, nil
}

func (s *attendanceService) GetStatus(ctx context.Context, userID, concertID string) (*domain.AttendanceRecord, error) {
	rec, err := s.attendanceRepo.Get(ctx, domain.AttendanceKey(userID, concertID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return rec, nil
}

func (s *attendanceService) ListMyShows(ctx context.Context, userID string) ([]*domain.AttendanceWithConcert, error) {
	records, err := s.attendanceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	result := make([]*domain.AttendanceWithConcert, 0, len(records))
	for _, rec := range records {
		concert, err := s.concertRepo.GetByID(ctx, rec.ConcertID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Concert dropped from the catalog; skip the orphan record.
				continue
			}
			return nil, fmt.Errorf("get concert: %w", err)
		}
		result = append(result, &domain.AttendanceWithConcert{Record: rec, Concert: concert})
	}
	// ISO dates sort chronologically as strings.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Concert.Dates.Start.LocalDate < result[j].Concert.Dates.Start.LocalDate
	})
	return result, nil
}
