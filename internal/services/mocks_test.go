package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"encoresocial/internal/domain"
)

// Stateful map-backed mocks shared by the service tests. They mutate their
// maps so multi-step flows can be asserted end to end.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepository struct {
	users map[string]*domain.User
	err   error
}

func newMockUserRepository(users ...*domain.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[string]*domain.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = fmt.Sprintf("u%d", len(m.users)+1)
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepository) GetByHandle(ctx context.Context, handle string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Handle == handle {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepository) Search(ctx context.Context, term, excludeID string, limit int) ([]*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	term = strings.ToLower(term)
	out := []*domain.User{}
	for _, u := range m.users {
		if u.ID == excludeID {
			continue
		}
		if strings.Contains(strings.ToLower(u.Handle), term) || strings.Contains(strings.ToLower(u.Name), term) {
			out = append(out, u)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

type mockFriendRequestRepository struct {
	requests map[string]*domain.FriendRequest
	err      error
}

func newMockFriendRequestRepository(reqs ...*domain.FriendRequest) *mockFriendRequestRepository {
	m := &mockFriendRequestRepository{requests: make(map[string]*domain.FriendRequest)}
	for _, r := range reqs {
		m.requests[r.ID] = r
	}
	return m
}

func (m *mockFriendRequestRepository) Get(ctx context.Context, id string) (*domain.FriendRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (m *mockFriendRequestRepository) Create(ctx context.Context, req *domain.FriendRequest) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.requests[req.ID]; ok {
		return domain.ErrExists
	}
	m.requests[req.ID] = req
	return nil
}

func (m *mockFriendRequestRepository) Replace(ctx context.Context, req *domain.FriendRequest) error {
	if m.err != nil {
		return m.err
	}
	m.requests[req.ID] = req
	return nil
}

func (m *mockFriendRequestRepository) SetStatus(ctx context.Context, id string, status domain.RequestStatus, updatedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	r, ok := m.requests[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = updatedAt
	return nil
}

func (m *mockFriendRequestRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.requests, id)
	return nil
}

func (m *mockFriendRequestRepository) listPending(field func(*domain.FriendRequest) string, userID string) []*domain.FriendRequest {
	out := []*domain.FriendRequest{}
	for _, r := range m.requests {
		if r.Status == domain.RequestPending && field(r) == userID {
			out = append(out, r)
		}
	}
	return out
}

func (m *mockFriendRequestRepository) ListPendingTo(ctx context.Context, userID string) ([]*domain.FriendRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listPending(func(r *domain.FriendRequest) string { return r.ToUserID }, userID), nil
}

func (m *mockFriendRequestRepository) ListPendingFrom(ctx context.Context, userID string) ([]*domain.FriendRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listPending(func(r *domain.FriendRequest) string { return r.FromUserID }, userID), nil
}

type mockFriendshipRepository struct {
	friendships map[string]*domain.Friendship
	err         error
}

func newMockFriendshipRepository(fs ...*domain.Friendship) *mockFriendshipRepository {
	m := &mockFriendshipRepository{friendships: make(map[string]*domain.Friendship)}
	for _, f := range fs {
		m.friendships[f.ID] = f
	}
	return m
}

func (m *mockFriendshipRepository) Get(ctx context.Context, id string) (*domain.Friendship, error) {
	if m.err != nil {
		return nil, m.err
	}
	f, ok := m.friendships[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

func (m *mockFriendshipRepository) Create(ctx context.Context, f *domain.Friendship) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.friendships[f.ID]; ok {
		return domain.ErrExists
	}
	m.friendships[f.ID] = f
	return nil
}

func (m *mockFriendshipRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.friendships, id)
	return nil
}

func (m *mockFriendshipRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Friendship, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Friendship{}
	for _, f := range m.friendships {
		if f.User1ID == userID || f.User2ID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

type mockAttendanceRepository struct {
	records map[string]*domain.AttendanceRecord
	err     error
}

func newMockAttendanceRepository(recs ...*domain.AttendanceRecord) *mockAttendanceRepository {
	m := &mockAttendanceRepository{records: make(map[string]*domain.AttendanceRecord)}
	for _, r := range recs {
		m.records[r.ID] = r
	}
	return m
}

func (m *mockAttendanceRepository) Get(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (m *mockAttendanceRepository) Upsert(ctx context.Context, rec *domain.AttendanceRecord) error {
	if m.err != nil {
		return m.err
	}
	if prev, ok := m.records[rec.ID]; ok && rec.CreatedAt.IsZero() {
		rec.CreatedAt = prev.CreatedAt
	}
	m.records[rec.ID] = rec
	return nil
}

func (m *mockAttendanceRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.records, id)
	return nil
}

func (m *mockAttendanceRepository) list(match func(*domain.AttendanceRecord) bool) []*domain.AttendanceRecord {
	out := []*domain.AttendanceRecord{}
	for _, r := range m.records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

func (m *mockAttendanceRepository) ListByUser(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list(func(r *domain.AttendanceRecord) bool { return r.UserID == userID }), nil
}

func (m *mockAttendanceRepository) ListByConcert(ctx context.Context, concertID string) ([]*domain.AttendanceRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list(func(r *domain.AttendanceRecord) bool { return r.ConcertID == concertID }), nil
}

func (m *mockAttendanceRepository) ListGoingByConcert(ctx context.Context, concertID string) ([]*domain.AttendanceRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list(func(r *domain.AttendanceRecord) bool {
		return r.ConcertID == concertID && r.Status == domain.StatusGoing
	}), nil
}

type mockSummaryRepository struct {
	summaries map[string]*domain.AttendanceSummary
	err       error
}

func newMockSummaryRepository() *mockSummaryRepository {
	return &mockSummaryRepository{summaries: make(map[string]*domain.AttendanceSummary)}
}

func (m *mockSummaryRepository) Get(ctx context.Context, concertID string) (*domain.AttendanceSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.summaries[concertID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *mockSummaryRepository) Save(ctx context.Context, s *domain.AttendanceSummary) error {
	if m.err != nil {
		return m.err
	}
	m.summaries[s.ConcertID] = s
	return nil
}

type mockConcertRepository struct {
	concerts map[string]*domain.Concert
	upcoming []*domain.Concert
	err      error
}

func newMockConcertRepository(concerts ...*domain.Concert) *mockConcertRepository {
	m := &mockConcertRepository{concerts: make(map[string]*domain.Concert)}
	for _, c := range concerts {
		m.concerts[c.ID] = c
		m.upcoming = append(m.upcoming, c)
	}
	return m
}

func (m *mockConcertRepository) GetByID(ctx context.Context, id string) (*domain.Concert, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.concerts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (m *mockConcertRepository) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]*domain.Concert, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Concert{}
	for _, c := range m.upcoming {
		if c.Dates.Start.LocalDate >= fromDate {
			out = append(out, c)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

type mockHasher struct {
	saltErr error
}

func (m *mockHasher) GenerateSalt() (string, error) {
	if m.saltErr != nil {
		return "", m.saltErr
	}
	return "salt", nil
}

func (m *mockHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (m *mockHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type mockTokenIssuer struct{}

func (m *mockTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	return "token-" + userID, nil
}

type mockNotifier struct {
	requestsReceived int
	requestsAccepted int
	welcomes         int
}

func (m *mockNotifier) FriendRequestReceived(ctx context.Context, to, from *domain.User) {
	m.requestsReceived++
}

func (m *mockNotifier) FriendRequestAccepted(ctx context.Context, to, by *domain.User) {
	m.requestsAccepted++
}

func (m *mockNotifier) Welcome(ctx context.Context, to *domain.User) {
	m.welcomes++
}
