package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"encoresocial/internal/delivery/http/helpers"
	"encoresocial/internal/delivery/http/middleware"
	"encoresocial/internal/domain"
	"encoresocial/internal/services"
)

// CatalogPage is one page of the filtered concert catalog.
type CatalogPage struct {
	Concerts []*domain.Concert `json:"concerts"`
	Meta     helpers.PageMeta  `json:"meta"`
}

// CatalogFilters are the distinct filter values present in the catalog.
type CatalogFilters struct {
	Genres []string `json:"genres"`
	Cities []string `json:"cities"`
}

// ListConcertsSuccessResponse is the success response envelope for GET /concerts (200).
type ListConcertsSuccessResponse struct {
	Data  CatalogPage       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetConcertSuccessResponse is the success response envelope for GET /concerts/{concertID} (200).
type GetConcertSuccessResponse struct {
	Data  *domain.Concert   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CatalogFiltersSuccessResponse is the success response envelope for GET /concerts/filters (200).
type CatalogFiltersSuccessResponse struct {
	Data  CatalogFilters    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CatalogController handles the read-only concert catalog endpoints.
type CatalogController struct {
	Logger      *slog.Logger
	ConcertRepo domain.ConcertRepository
}

// NewCatalogController creates a CatalogController.
func NewCatalogController(logger *slog.Logger, concertRepo domain.ConcertRepository) *CatalogController {
	return &CatalogController{
		Logger:      logger,
		ConcertRepo: concertRepo,
	}
}

// loadCatalog builds a catalog view for one request: a fresh upcoming
// snapshot with the query's filters applied.
func (c *CatalogController) loadCatalog(r *http.Request) (*services.Catalog, error) {
	cat := services.NewCatalog(c.ConcertRepo)
	if err := cat.Load(r.Context()); err != nil {
		return nil, err
	}
	q := r.URL.Query()
	if term := q.Get("search"); term != "" {
		cat.FilterByText(term)
	}
	criteria := services.FilterCriteria{
		DateRange: services.DateRange(q.Get("date_range")),
		City:      q.Get("city"),
	}
	if genres := q.Get("genres"); genres != "" {
		for _, g := range strings.Split(genres, ",") {
			if g = strings.TrimSpace(g); g != "" {
				criteria.Genres = append(criteria.Genres, g)
			}
		}
	}
	cat.FilterByCriteria(criteria)
	return cat, nil
}

// ListConcerts godoc
// @Summary List upcoming concerts
// @Description Returns one page of upcoming concerts, optionally narrowed by a free-text search and structured filters. Filters are ANDed. Requires Bearer token.
// @Tags concerts
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text match against artist, name, venue, genre, or city"
// @Param genres query string false "Comma-separated genre names"
// @Param date_range query string false "One of: all, week, month, quarter" default(all)
// @Param city query string false "Venue city name"
// @Param page query int false "Page number (15 per page)" default(1)
// @Success 200 {object} controllers.ListConcertsSuccessResponse "data contains the page and paging metadata"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /concerts [get]
func (c *CatalogController) ListConcerts(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	cat, err := c.loadCatalog(r)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	page := helpers.ParsePage(r)
	for i := 1; i < page; i++ {
		cat.LoadMore()
	}
	visible := cat.Visible()
	start := (page - 1) * services.CatalogPageSize
	concerts := []*domain.Concert{}
	if start < len(visible) {
		concerts = visible[start:]
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CatalogPage{
		Concerts: concerts,
		Meta:     helpers.PageMeta{Page: page, HasMore: cat.HasMore()},
	})
}

// GetConcert godoc
// @Summary Get a concert
// @Description Returns one concert by id. Requires Bearer token.
// @Tags concerts
// @Produce json
// @Security BearerAuth
// @Param concertID path string true "Concert ID"
// @Success 200 {object} controllers.GetConcertSuccessResponse "data contains the concert"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /concerts/{concertID} [get]
func (c *CatalogController) GetConcert(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	concertID := r.PathValue("concertID")
	concert, err := c.ConcertRepo.GetByID(r.Context(), concertID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "concert not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, concert)
}

// GetFilters godoc
// @Summary List catalog filter values
// @Description Returns the distinct genres and cities present in the upcoming catalog, sorted. Requires Bearer token.
// @Tags concerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.CatalogFiltersSuccessResponse "data contains genres and cities"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /concerts/filters [get]
func (c *CatalogController) GetFilters(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	cat := services.NewCatalog(c.ConcertRepo)
	if err := cat.Load(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CatalogFilters{Genres: cat.Genres(), Cities: cat.Cities()})
}
