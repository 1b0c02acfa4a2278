package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encoresocial/internal/delivery/http/helpers"
	"encoresocial/internal/delivery/http/middleware"
	"encoresocial/internal/domain"
)

// fakeConcertRepository implements domain.ConcertRepository for handler tests.
type fakeConcertRepository struct {
	concerts []*domain.Concert
	err      error
}

func (f *fakeConcertRepository) GetByID(ctx context.Context, id string) (*domain.Concert, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.concerts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeConcertRepository) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]*domain.Concert, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Concert{}
	for _, c := range f.concerts {
		if c.Dates.Start.LocalDate >= fromDate {
			out = append(out, c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// upcomingDate returns an ISO date n days from now, keeping fixtures ahead of
// the catalog's today cutoff.
func upcomingDate(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

func testConcert(id, name, genre, city string, daysOut int) *domain.Concert {
	return &domain.Concert{
		ID:    id,
		Name:  name,
		Dates: domain.ConcertDates{Start: domain.ConcertStart{LocalDate: upcomingDate(daysOut)}},
		Venue: &domain.ConcertVenue{
			Name: "The Spot",
			City: &domain.NamedRef{Name: city},
		},
		Classification: &domain.Classification{
			Genre: &domain.NamedRef{Name: genre},
		},
	}
}

func decodeCatalogPage(t *testing.T, rr *httptest.ResponseRecorder) CatalogPage {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var page CatalogPage
	require.NoError(t, json.Unmarshal(dataBytes, &page))
	return page
}

func TestCatalogController_ListConcerts(t *testing.T) {
	repo := &fakeConcertRepository{concerts: []*domain.Concert{
		testConcert("c1", "Indie Night", "Indie", "Austin", 3),
		testConcert("c2", "Rock Fest", "Rock", "Dallas", 5),
		testConcert("c3", "Rock Revival", "Rock", "Austin", 8),
	}}
	ctrl := NewCatalogController(testLogger(), repo)

	newReq := func(query string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "http://test/concerts"+query, nil)
		return req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	}

	t.Run("unfiltered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListConcerts(rr, newReq(""))

		require.Equal(t, http.StatusOK, rr.Code)
		page := decodeCatalogPage(t, rr)
		assert.Len(t, page.Concerts, 3)
		assert.Equal(t, 1, page.Meta.Page)
		assert.False(t, page.Meta.HasMore)
	})

	t.Run("genre filter", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListConcerts(rr, newReq("?genres=rock"))

		require.Equal(t, http.StatusOK, rr.Code)
		page := decodeCatalogPage(t, rr)
		require.Len(t, page.Concerts, 2)
		assert.Equal(t, "c2", page.Concerts[0].ID)
	})

	t.Run("search and city combined", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListConcerts(rr, newReq("?search=rock&city=Austin"))

		require.Equal(t, http.StatusOK, rr.Code)
		page := decodeCatalogPage(t, rr)
		require.Len(t, page.Concerts, 1)
		assert.Equal(t, "c3", page.Concerts[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListConcerts(rr, newReq("?search=opera"))

		require.Equal(t, http.StatusOK, rr.Code)
		page := decodeCatalogPage(t, rr)
		assert.Empty(t, page.Concerts)
		assert.False(t, page.Meta.HasMore)
	})

	t.Run("repo error", func(t *testing.T) {
		broken := NewCatalogController(testLogger(), &fakeConcertRepository{err: assert.AnError})
		rr := httptest.NewRecorder()
		broken.ListConcerts(rr, newReq(""))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestCatalogController_ListConcerts_Pagination(t *testing.T) {
	var concerts []*domain.Concert
	for i := 0; i < 40; i++ {
		concerts = append(concerts, testConcert(fmt.Sprintf("c%02d", i), fmt.Sprintf("Show %02d", i), "Rock", "Austin", i+1))
	}
	ctrl := NewCatalogController(testLogger(), &fakeConcertRepository{concerts: concerts})

	newReq := func(query string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "http://test/concerts"+query, nil)
		return req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	}

	t.Run("first page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListConcerts(rr, newReq("?page=1"))

		page := decodeCatalogPage(t, rr)
		require.Len(t, page.Concerts, 15)
		assert.Equal(t, "c00", page.Concerts[0].ID)
		assert.True(t, page.Meta.HasMore)
	})

	t.Run("second page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListConcerts(rr, newReq("?page=2"))

		page := decodeCatalogPage(t, rr)
		require.Len(t, page.Concerts, 15)
		assert.Equal(t, "c15", page.Concerts[0].ID)
		assert.True(t, page.Meta.HasMore)
	})

	t.Run("last page is short", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListConcerts(rr, newReq("?page=3"))

		page := decodeCatalogPage(t, rr)
		require.Len(t, page.Concerts, 10)
		assert.False(t, page.Meta.HasMore)
	})

	t.Run("page past the end", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ctrl.ListConcerts(rr, newReq("?page=9"))

		page := decodeCatalogPage(t, rr)
		assert.Empty(t, page.Concerts)
		assert.False(t, page.Meta.HasMore)
	})
}

func TestCatalogController_GetConcert(t *testing.T) {
	repo := &fakeConcertRepository{concerts: []*domain.Concert{
		testConcert("c1", "Indie Night", "Indie", "Austin", 3),
	}}
	ctrl := NewCatalogController(testLogger(), repo)

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/concerts/c1", nil)
		req.SetPathValue("concertID", "c1")
		req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
		rr := httptest.NewRecorder()

		ctrl.GetConcert(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		var concert domain.Concert
		require.NoError(t, json.Unmarshal(dataBytes, &concert))
		assert.Equal(t, "Indie Night", concert.Name)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://test/concerts/ghost", nil)
		req.SetPathValue("concertID", "ghost")
		req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
		rr := httptest.NewRecorder()

		ctrl.GetConcert(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCatalogController_GetFilters(t *testing.T) {
	repo := &fakeConcertRepository{concerts: []*domain.Concert{
		testConcert("c1", "Indie Night", "Indie", "Austin", 3),
		testConcert("c2", "Rock Fest", "Rock", "Dallas", 5),
		testConcert("c3", "Rock Revival", "Rock", "Austin", 8),
	}}
	ctrl := NewCatalogController(testLogger(), repo)

	req := httptest.NewRequest(http.MethodGet, "http://test/concerts/filters", nil)
	req = req.WithContext(middleware.SetUserID(req.Context(), "u1"))
	rr := httptest.NewRecorder()

	ctrl.GetFilters(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var filters CatalogFilters
	require.NoError(t, json.Unmarshal(dataBytes, &filters))
	assert.Equal(t, []string{"Indie", "Rock"}, filters.Genres)
	assert.Equal(t, []string{"Austin", "Dallas"}, filters.Cities)
}
