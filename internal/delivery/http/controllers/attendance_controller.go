package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"encoresocial/internal/delivery/http/helpers"
	"encoresocial/internal/delivery/http/middleware"
	"encoresocial/internal/domain"
)

// SetAttendanceRequest is the request body for PUT /concerts/{concertID}/attendance.
// The seat, tag, and note fields are only honored for status "going".
type SetAttendanceRequest struct {
	Status        string   `json:"status"`
	Section       string   `json:"section"`
	Row           string   `json:"row"`
	SeatNumber    string   `json:"seat_number"`
	TaggedFriends []string `json:"tagged_friends"`
	Notes         string   `json:"notes"`
}

// Validate implements Validator.
func (s SetAttendanceRequest) Validate() []string {
	var errs []string
	status := strings.TrimSpace(strings.ToLower(s.Status))
	if status != string(domain.StatusInterested) && status != string(domain.StatusGoing) {
		errs = append(errs, "status must be \"interested\" or \"going\"")
	}
	return errs
}

// SetAttendanceSuccessResponse is the success response envelope for PUT /concerts/{concertID}/attendance (200).
type SetAttendanceSuccessResponse struct {
	Data  *domain.AttendanceRecord `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// GetSummarySuccessResponse is the success response envelope for GET /concerts/{concertID}/attendance/summary (200).
type GetSummarySuccessResponse struct {
	Data  *domain.AttendanceSummary `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ListAttendeesSuccessResponse is the success response envelope for GET /concerts/{concertID}/attendees (200).
type ListAttendeesSuccessResponse struct {
	Data  []*domain.Attendee `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListSectionsSuccessResponse is the success response envelope for GET /concerts/{concertID}/attendees/sections (200).
type ListSectionsSuccessResponse struct {
	Data  []domain.VenueSection `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// MyShowsSuccessResponse is the success response envelope for GET /me/shows (200).
type MyShowsSuccessResponse struct {
	Data  []*domain.AttendanceWithConcert `json:"data"`
	Error *helpers.APIError               `json:"error"`
}

// AttendanceController handles attendance and friend-visibility endpoints.
type AttendanceController struct {
	Logger     *slog.Logger
	Service    domain.AttendanceService
	Visibility domain.VisibilityResolver
}

// NewAttendanceController creates an AttendanceController.
func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService, vis domain.VisibilityResolver) *AttendanceController {
	return &AttendanceController{
		Logger:     logger,
		Service:    svc,
		Visibility: vis,
	}
}

// SetAttendance godoc
// @Summary Set attendance status
// @Description Marks the caller interested in or going to a concert. For "going", optional seat details, tagged friends, and notes are stored; "interested" clears them. Requires Bearer token.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param concertID path string true "Concert ID"
// @Param body body SetAttendanceRequest true "Status and optional details"
// @Success 200 {object} controllers.SetAttendanceSuccessResponse "data contains the stored record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /concerts/{concertID}/attendance [put]
func (c *AttendanceController) SetAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req SetAttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	concertID := r.PathValue("concertID")
	status := domain.AttendanceStatus(strings.TrimSpace(strings.ToLower(req.Status)))
	details := &domain.GoingDetails{
		Section:       req.Section,
		Row:           req.Row,
		SeatNumber:    req.SeatNumber,
		TaggedFriends: req.TaggedFriends,
		Notes:         req.Notes,
	}
	rec, err := c.Service.SetStatus(r.Context(), userID, concertID, status, details)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "concert not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rec)
}

// RemoveAttendance godoc
// @Summary Remove attendance status
// @Description Clears the caller's status for a concert. A no-op when no record exists. Requires Bearer token.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param concertID path string true "Concert ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /concerts/{concertID}/attendance [delete]
func (c *AttendanceController) RemoveAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	concertID := r.PathValue("concertID")
	if err := c.Service.RemoveStatus(r.Context(), userID, concertID); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "attendance removed"})
}

// GetAttendance godoc
// @Summary Get own attendance status
// @Description Returns the caller's attendance record for a concert, or 404 when none exists. Requires Bearer token.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param concertID path string true "Concert ID"
// @Success 200 {object} controllers.SetAttendanceSuccessResponse "data contains the record"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /concerts/{concertID}/attendance [get]
func (c *AttendanceController) GetAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	concertID := r.PathValue("concertID")
	rec, err := c.Service.GetStatus(r.Context(), userID, concertID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no attendance record")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rec)
}

// GetSummary godoc
// @Summary Get attendance summary
// @Description Returns the denormalized per-concert attendance aggregate: counts and attendee id lists per status. Empty for untouched concerts. Requires Bearer token.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param concertID path string true "Concert ID"
// @Success 200 {object} controllers.GetSummarySuccessResponse "data contains the summary"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /concerts/{concertID}/attendance/summary [get]
func (c *AttendanceController) GetSummary(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	concertID := r.PathValue("concertID")
	summary, err := c.Service.GetSummary(r.Context(), concertID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// ListAttendees godoc
// @Summary List friends going to a concert
// @Description Returns the "going" attendees of a concert restricted to the caller's friends. Set include_me=true to include the caller's own record. Requires Bearer token.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param concertID path string true "Concert ID"
// @Param include_me query bool false "Include the caller's own record"
// @Success 200 {object} controllers.ListAttendeesSuccessResponse "data contains the attendees"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /concerts/{concertID}/attendees [get]
func (c *AttendanceController) ListAttendees(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	concertID := r.PathValue("concertID")
	includeMe := r.URL.Query().Get("include_me") == "true"
	attendees, err := c.Visibility.AttendeesFor(r.Context(), concertID, userID, includeMe)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, attendees)
}

// ListSections godoc
// @Summary List friends going, grouped by venue section
// @Description Returns the caller's visible attendees (including the caller) grouped by seat section. Attendees without a section are omitted. Requires Bearer token.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param concertID path string true "Concert ID"
// @Success 200 {object} controllers.ListSectionsSuccessResponse "data contains the sections"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /concerts/{concertID}/attendees/sections [get]
func (c *AttendanceController) ListSections(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	concertID := r.PathValue("concertID")
	attendees, err := c.Visibility.AttendeesFor(r.Context(), concertID, userID, true)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Visibility.GroupBySection(attendees))
}

// MyShows godoc
// @Summary List own shows
// @Description Returns the caller's interested and going records joined with concert details, sorted by event date ascending. Requires Bearer token.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MyShowsSuccessResponse "data contains the caller's shows"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/shows [get]
func (c *AttendanceController) MyShows(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	shows, err := c.Service.ListMyShows(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shows)
}
