package domain

import (
	"context"
	"time"
)

// AttendanceStatus is a user's relationship to a concert. Absence of a
// record means "none".
type AttendanceStatus string

const (
	StatusInterested AttendanceStatus = "interested"
	StatusGoing      AttendanceStatus = "going"
	// StatusMaybe appears in summaries for legacy records but is not
	// settable through the service.
	StatusMaybe AttendanceStatus = "maybe"
)

// SeatDetails describes where an attendee is seated. All fields optional.
// swagger:model SeatDetails
type SeatDetails struct {
	Section    *string `json:"section"`
	Row        *string `json:"row"`
	SeatNumber *string `json:"seat_number"`
}

// Empty reports whether no seat field is set.
func (s *SeatDetails) Empty() bool {
	return s == nil || (s.Section == nil && s.Row == nil && s.SeatNumber == nil)
}

// AttendanceRecord is one user's status for one concert. Keyed by
// AttendanceKey(user, concert) by construction, not by a separate
// uniqueness check.
// swagger:model AttendanceRecord
type AttendanceRecord struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	ConcertID     string           `json:"concert_id"`
	Status        AttendanceStatus `json:"status"`
	SeatDetails   *SeatDetails     `json:"seat_details"`
	TaggedFriends []string         `json:"tagged_friends"`
	Notes         *string          `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// AttendanceKey returns the deterministic record id for (user, concert).
func AttendanceKey(userID, concertID string) string {
	return userID + "_" + concertID
}

// AttendeeCounts are the denormalized per-status counts of a summary.
type AttendeeCounts struct {
	Going      int `json:"going"`
	Interested int `json:"interested"`
	Maybe      int `json:"maybe"`
}

// AttendeeLists are the per-status member id lists of a summary.
type AttendeeLists struct {
	Going      []string `json:"going"`
	Interested []string `json:"interested"`
	Maybe      []string `json:"maybe"`
}

// AttendanceSummary is the denormalized per-concert aggregate, fully
// recomputed from the record set whenever any record for the concert
// changes.
// swagger:model AttendanceSummary
type AttendanceSummary struct {
	ConcertID      string         `json:"concert_id"`
	AttendeeCounts AttendeeCounts `json:"attendee_counts"`
	Attendees      AttendeeLists  `json:"attendees"`
	LastUpdated    time.Time      `json:"last_updated"`
}

// GoingDetails carries the optional extras accepted when marking "going".
type GoingDetails struct {
	Section       string
	Row           string
	SeatNumber    string
	TaggedFriends []string
	Notes         string
}

// AttendanceRepository defines storage for attendance record documents.
type AttendanceRepository interface {
	Get(ctx context.Context, id string) (*AttendanceRecord, error)
	// Upsert merge-writes the record under its deterministic id. A zero
	// CreatedAt leaves any stored value untouched.
	Upsert(ctx context.Context, rec *AttendanceRecord) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*AttendanceRecord, error)
	ListByConcert(ctx context.Context, concertID string) ([]*AttendanceRecord, error)
	ListGoingByConcert(ctx context.Context, concertID string) ([]*AttendanceRecord, error)
}

// AttendanceSummaryRepository defines storage for per-concert summaries.
type AttendanceSummaryRepository interface {
	Get(ctx context.Context, concertID string) (*AttendanceSummary, error)
	Save(ctx context.Context, summary *AttendanceSummary) error
}

// AttendanceWithConcert bundles a record with its concert for display.
type AttendanceWithConcert struct {
	Record  *AttendanceRecord `json:"record"`
	Concert *Concert          `json:"concert"`
}

// AttendanceService owns per-user-per-concert status and the denormalized
// per-concert aggregate.
type AttendanceService interface {
	// SetStatus writes the record for (user, concert). "interested" clears
	// seat, tag, and note details; "going" stores the optional details.
	SetStatus(ctx context.Context, userID, concertID string, status AttendanceStatus, details *GoingDetails) (*AttendanceRecord, error)
	// RemoveStatus deletes the record; it is a no-op when absent.
	RemoveStatus(ctx context.Context, userID, concertID string) error
	RecomputeSummary(ctx context.Context, concertID string) (*AttendanceSummary, error)
	GetSummary(ctx context.Context, concertID string) (*AttendanceSummary, error)
	GetStatus(ctx context.Context, userID, concertID string) (*AttendanceRecord, error)
	// ListMyShows returns the user's interested/going records joined with
	// their concerts, sorted by local event date ascending.
	ListMyShows(ctx context.Context, userID string) ([]*AttendanceWithConcert, error)
}
