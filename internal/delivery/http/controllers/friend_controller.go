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

// SendFriendRequestRequest is the request body for POST /friends/requests
type SendFriendRequestRequest struct {
	ToUserID string `json:"to_user_id"`
}

// Validate implements Validator.
func (s SendFriendRequestRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.ToUserID) == "" {
		errs = append(errs, "to_user_id is required")
	}
	return errs
}

// RespondToRequestRequest is the request body for POST /friends/requests/{requestID}/respond
type RespondToRequestRequest struct {
	Action string `json:"action"`
}

// Validate implements Validator.
func (r RespondToRequestRequest) Validate() []string {
	var errs []string
	action := strings.TrimSpace(strings.ToLower(r.Action))
	if action != string(domain.ActionAccept) && action != string(domain.ActionDecline) {
		errs = append(errs, "action must be \"accept\" or \"decline\"")
	}
	return errs
}

// FriendRequestLists groups the caller's pending requests by direction.
type FriendRequestLists struct {
	Incoming []*domain.FriendRequestWithUser `json:"incoming"`
	Outgoing []*domain.FriendRequestWithUser `json:"outgoing"`
}

// FriendShowsResponse is a friend's visible shows grouped by status.
type FriendShowsResponse struct {
	Going      []*domain.AttendanceWithConcert `json:"going"`
	Interested []*domain.AttendanceWithConcert `json:"interested"`
}

// ListFriendsSuccessResponse is the success response envelope for GET /friends (200).
type ListFriendsSuccessResponse struct {
	Data  []*domain.FriendWithUser `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ListRequestsSuccessResponse is the success response envelope for GET /friends/requests (200).
type ListRequestsSuccessResponse struct {
	Data  FriendRequestLists `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// SendRequestSuccessResponse is the success response envelope for POST /friends/requests (201).
type SendRequestSuccessResponse struct {
	Data  *domain.FriendRequest `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// FriendShowsSuccessResponse is the success response envelope for GET /friends/{friendID}/shows (200).
type FriendShowsSuccessResponse struct {
	Data  FriendShowsResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// FriendController handles friendship and friend-request endpoints.
type FriendController struct {
	Logger     *slog.Logger
	Service    domain.FriendshipService
	Visibility domain.VisibilityResolver
}

// NewFriendController creates a FriendController.
func NewFriendController(logger *slog.Logger, svc domain.FriendshipService, vis domain.VisibilityResolver) *FriendController {
	return &FriendController{
		Logger:     logger,
		Service:    svc,
		Visibility: vis,
	}
}

// ListFriends godoc
// @Summary List friends
// @Description Returns the caller's friendships with each counterpart's profile. Requires Bearer token.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListFriendsSuccessResponse "data contains friendships with user profiles"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /friends [get]
func (c *FriendController) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	friends, err := c.Service.ListFriends(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, friends)
}

// RemoveFriend godoc
// @Summary Remove a friendship
// @Description Deletes the friendship and any request documents for the pair, so either side can send a fresh request later. Requires Bearer token.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param friendshipID path string true "Friendship ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /friends/{friendshipID} [delete]
func (c *FriendController) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	friendshipID := r.PathValue("friendshipID")
	if err := c.Service.RemoveFriendship(r.Context(), friendshipID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "friendship not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "friend removed"})
}

// ListRequests godoc
// @Summary List pending friend requests
// @Description Returns the caller's pending requests, incoming with the sender's profile and outgoing with the recipient's. Requires Bearer token.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListRequestsSuccessResponse "data contains incoming and outgoing requests"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /friends/requests [get]
func (c *FriendController) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	incoming, outgoing, err := c.Service.ListRequests(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, FriendRequestLists{Incoming: incoming, Outgoing: outgoing})
}

// SendRequest godoc
// @Summary Send a friend request
// @Description Sends a pending friend request to another user. Re-sending after a decline replaces the declined request. Requires Bearer token.
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendFriendRequestRequest true "Recipient"
// @Success 201 {object} controllers.SendRequestSuccessResponse "data contains the pending request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already friends, duplicate, or reciprocal pending)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /friends/requests [post]
func (c *FriendController) SendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req SendFriendRequestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	request, err := c.Service.SendRequest(r.Context(), userID, req.ToUserID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyFriends) ||
			errors.Is(err, domain.ErrDuplicateRequest) ||
			errors.Is(err, domain.ErrReciprocalPending) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, request)
}

// RespondToRequest godoc
// @Summary Respond to a friend request
// @Description Accept or decline a pending friend request addressed to the caller. Accepting creates the friendship. Requires Bearer token.
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestID path string true "Friend request ID"
// @Param body body RespondToRequestRequest true "Action: accept or decline"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (reciprocal pending requests)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /friends/requests/{requestID}/respond [post]
func (c *FriendController) RespondToRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req RespondToRequestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	requestID := r.PathValue("requestID")
	action := domain.RequestAction(strings.TrimSpace(strings.ToLower(req.Action)))
	if err := c.Service.RespondToRequest(r.Context(), requestID, userID, action); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "friend request not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "request is not addressed to you")
			return
		}
		if errors.Is(err, domain.ErrReciprocalConflict) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "request " + string(action) + "ed"})
}

// CancelRequest godoc
// @Summary Cancel an outgoing friend request
// @Description Withdraws the caller's pending request to the given user. A no-op when no pending request exists. Requires Bearer token.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param toUserID path string true "Recipient user ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /friends/requests/{toUserID} [delete]
func (c *FriendController) CancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	toUserID := r.PathValue("toUserID")
	if err := c.Service.CancelRequest(r.Context(), userID, toUserID); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "request cancelled"})
}

// FriendShows godoc
// @Summary Get a friend's shows
// @Description Returns the going and interested lists of a friend, joined with concert details. Forbidden unless the target is the caller or a friend of the caller. Requires Bearer token.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param friendID path string true "Friend user ID"
// @Success 200 {object} controllers.FriendShowsSuccessResponse "data contains going and interested shows"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /friends/{friendID}/shows [get]
func (c *FriendController) FriendShows(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	friendID := r.PathValue("friendID")
	going, interested, err := c.Visibility.FriendShows(r.Context(), userID, friendID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "not friends with this user")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, FriendShowsResponse{Going: going, Interested: interested})
}
