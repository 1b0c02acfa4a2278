package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"encoresocial/internal/delivery/http/controllers"
	"encoresocial/internal/delivery/http/middleware"
	"encoresocial/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Everything except sign-up and login requires a Bearer token.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	friendController *controllers.FriendController,
	attendanceController *controllers.AttendanceController,
	catalogController *controllers.CatalogController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Users
	mux.HandleFunc("GET /users/me", auth(authController.GetMe))
	mux.HandleFunc("GET /users/search", auth(authController.SearchUsers))

	// Friends
	mux.HandleFunc("GET /friends", auth(friendController.ListFriends))
	mux.HandleFunc("DELETE /friends/{friendshipID}", auth(friendController.RemoveFriend))
	mux.HandleFunc("GET /friends/requests", auth(friendController.ListRequests))
	mux.HandleFunc("POST /friends/requests", auth(friendController.SendRequest))
	mux.HandleFunc("POST /friends/requests/{requestID}/respond", auth(friendController.RespondToRequest))
	mux.HandleFunc("DELETE /friends/requests/{toUserID}", auth(friendController.CancelRequest))
	mux.HandleFunc("GET /friends/{friendID}/shows", auth(friendController.FriendShows))

	// Concert catalog
	mux.HandleFunc("GET /concerts", auth(catalogController.ListConcerts))
	mux.HandleFunc("GET /concerts/filters", auth(catalogController.GetFilters))
	mux.HandleFunc("GET /concerts/{concertID}", auth(catalogController.GetConcert))

	// Attendance
	mux.HandleFunc("PUT /concerts/{concertID}/attendance", auth(attendanceController.SetAttendance))
	mux.HandleFunc("DELETE /concerts/{concertID}/attendance", auth(attendanceController.RemoveAttendance))
	mux.HandleFunc("GET /concerts/{concertID}/attendance", auth(attendanceController.GetAttendance))
	mux.HandleFunc("GET /concerts/{concertID}/attendance/summary", auth(attendanceController.GetSummary))
	mux.HandleFunc("GET /concerts/{concertID}/attendees", auth(attendanceController.ListAttendees))
	mux.HandleFunc("GET /concerts/{concertID}/attendees/sections", auth(attendanceController.ListSections))
	mux.HandleFunc("GET /me/shows", auth(attendanceController.MyShows))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
