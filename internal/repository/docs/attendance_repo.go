package docs

import (
	"context"
	"errors"

	"encoresocial/internal/docstore"
	"encoresocial/internal/domain"
)

type attendanceRepository struct {
	store docstore.Store
}

// NewAttendanceRepository returns a domain.AttendanceRepository backed by
// the user_attendance collection.
func NewAttendanceRepository(store docstore.Store) domain.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func seatDetailsToDoc(s *domain.SeatDetails) any {
	if s == nil {
		return nil
	}
	return map[string]any{
		"section":    strOrNil(s.Section),
		"row":        strOrNil(s.Row),
		"seatNumber": strOrNil(s.SeatNumber),
	}
}

func strOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func docToSeatDetails(d docstore.Doc) *domain.SeatDetails {
	v, ok := docstore.Lookup(d, "seatDetails")
	if !ok || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	nested := docstore.Doc(m)
	return &domain.SeatDetails{
		Section:    strPtr(nested, "section"),
		Row:        strPtr(nested, "row"),
		SeatNumber: strPtr(nested, "seatNumber"),
	}
}

func docToAttendance(id string, d docstore.Doc) *domain.AttendanceRecord {
	return &domain.AttendanceRecord{
		ID:            id,
		UserID:        str(d, "userId"),
		ConcertID:     str(d, "concertId"),
		Status:        domain.AttendanceStatus(str(d, "status")),
		SeatDetails:   docToSeatDetails(d),
		TaggedFriends: strSlice(d, "taggedFriends"),
		Notes:         strPtr(d, "notes"),
		CreatedAt:     timeVal(d, "createdAt"),
		UpdatedAt:     timeVal(d, "updatedAt"),
	}
}

func (r *attendanceRepository) Get(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	d, err := r.store.Get(ctx, ColUserAttendance, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return docToAttendance(id, d), nil
}

func (r *attendanceRepository) Upsert(ctx context.Context, rec *domain.AttendanceRecord) error {
	tagged := rec.TaggedFriends
	if tagged == nil {
		tagged = []string{}
	}
	doc := docstore.Doc{
		"userId":        rec.UserID,
		"concertId":     rec.ConcertID,
		"status":        string(rec.Status),
		"seatDetails":   seatDetailsToDoc(rec.SeatDetails),
		"taggedFriends": tagged,
		"notes":         strOrNil(rec.Notes),
		"updatedAt":     encodeTime(rec.UpdatedAt),
	}
	// createdAt is only written on first create; merging without the field
	// leaves the stored value untouched.
	if !rec.CreatedAt.IsZero() {
		doc["createdAt"] = encodeTime(rec.CreatedAt)
	}
	return r.store.Merge(ctx, ColUserAttendance, rec.ID, doc)
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColUserAttendance, id)
}

func (r *attendanceRepository) list(ctx context.Context, filters ...docstore.Filter) ([]*domain.AttendanceRecord, error) {
	docs, err := r.store.Query(ctx, ColUserAttendance, docstore.Query{Filters: filters})
	if err != nil {
		return nil, err
	}
	recs := make([]*domain.AttendanceRecord, 0, len(docs))
	for _, d := range docs {
		recs = append(recs, docToAttendance(d.ID, d.Data))
	}
	return recs, nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	return r.list(ctx, docstore.Where("userId", userID))
}

func (r *attendanceRepository) ListByConcert(ctx context.Context, concertID string) ([]*domain.AttendanceRecord, error) {
	return r.list(ctx, docstore.Where("concertId", concertID))
}

func (r *attendanceRepository) ListGoingByConcert(ctx context.Context, concertID string) ([]*domain.AttendanceRecord, error) {
	return r.list(ctx,
		docstore.Where("concertId", concertID),
		docstore.Where("status", string(domain.StatusGoing)),
	)
}

type attendanceSummaryRepository struct {
	store docstore.Store
}

// NewAttendanceSummaryRepository returns a domain.AttendanceSummaryRepository
// backed by the concert_attendance collection.
func NewAttendanceSummaryRepository(store docstore.Store) domain.AttendanceSummaryRepository {
	return &attendanceSummaryRepository{store: store}
}

func intVal(d docstore.Doc, path string) int {
	v, ok := docstore.Lookup(d, path)
	if !ok {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return int(f)
}

func (r *attendanceSummaryRepository) Get(ctx context.Context, concertID string) (*domain.AttendanceSummary, error) {
	d, err := r.store.Get(ctx, ColConcertAttendance, concertID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.AttendanceSummary{
		ConcertID: concertID,
		AttendeeCounts: domain.AttendeeCounts{
			Going:      intVal(d, "attendeeCounts.going"),
			Interested: intVal(d, "attendeeCounts.interested"),
			Maybe:      intVal(d, "attendeeCounts.maybe"),
		},
		Attendees: domain.AttendeeLists{
			Going:      strSlice(d, "attendees.going"),
			Interested: strSlice(d, "attendees.interested"),
			Maybe:      strSlice(d, "attendees.maybe"),
		},
		LastUpdated: timeVal(d, "lastUpdated"),
	}, nil
}

func (r *attendanceSummaryRepository) Save(ctx context.Context, s *domain.AttendanceSummary) error {
	emptyIfNil := func(ids []string) []string {
		if ids == nil {
			return []string{}
		}
		return ids
	}
	return r.store.Merge(ctx, ColConcertAttendance, s.ConcertID, docstore.Doc{
		"concertId": s.ConcertID,
		"attendeeCounts": map[string]any{
			"going":      s.AttendeeCounts.Going,
			"interested": s.AttendeeCounts.Interested,
			"maybe":      s.AttendeeCounts.Maybe,
		},
		"attendees": map[string]any{
			"going":      emptyIfNil(s.Attendees.Going),
			"interested": emptyIfNil(s.Attendees.Interested),
			"maybe":      emptyIfNil(s.Attendees.Maybe),
		},
		"lastUpdated": encodeTime(s.LastUpdated),
	})
}
