package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"encoresocial/config"
	_ "encoresocial/docs"
	"encoresocial/internal/adapters/auth"
	"encoresocial/internal/adapters/email"
	httpapi "encoresocial/internal/delivery/http"
	"encoresocial/internal/delivery/http/controllers"
	"encoresocial/internal/delivery/http/middleware"
	"encoresocial/internal/docstore/postgres"
	"encoresocial/internal/repository/docs"
	"encoresocial/internal/services"
)

const tokenExpiry = 7 * 24 * time.Hour

// @title Encore Social API
// @version 1.0
// @description Concert attendance and friend visibility API.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}
	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	store := postgres.NewStore(db)
	userRepo := docs.NewUserRepository(store)
	requestRepo := docs.NewFriendRequestRepository(store)
	friendshipRepo := docs.NewFriendshipRepository(store)
	attendanceRepo := docs.NewAttendanceRepository(store)
	summaryRepo := docs.NewAttendanceSummaryRepository(store)
	concertRepo := docs.NewConcertRepository(store)

	hasher := auth.NewBcryptHasher(10)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.NotifyProvider,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}
	notifier := services.NewEmailNotifier(mailer, email.NewTemplateRenderer())

	userService := services.NewUserService(userRepo, hasher, tokenIssuer, tokenExpiry, notifier)
	friendshipService := services.NewFriendshipService(requestRepo, friendshipRepo, userRepo, notifier)
	attendanceService := services.NewAttendanceService(attendanceRepo, summaryRepo, concertRepo, logger)
	visibility := services.NewVisibilityResolver(friendshipRepo, attendanceRepo, concertRepo, userRepo)

	authController := controllers.NewAuthController(logger, userService)
	friendController := controllers.NewFriendController(logger, friendshipService, visibility)
	attendanceController := controllers.NewAttendanceController(logger, attendanceService, visibility)
	catalogController := controllers.NewCatalogController(logger, concertRepo)

	mux := httpapi.NewRouter(logger, tokenVerifier, authController, friendController, attendanceController, catalogController)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
