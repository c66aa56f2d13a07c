// Package main initializes and starts the TalkTracker HTTP server, setting
// up configuration, logging, database connections, repositories, services,
// and handlers.
package main

import (
	"cmp"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/TalkTracker/internal/config"
	"github.com/atinyakov/TalkTracker/internal/db"
	"github.com/atinyakov/TalkTracker/internal/logger"
	"github.com/atinyakov/TalkTracker/internal/repository"
	"github.com/atinyakov/TalkTracker/internal/server/handler/http"
	"github.com/atinyakov/TalkTracker/internal/service"
	"go.uber.org/zap"
)

// tokenTTL is how long a session token stays valid.
const tokenTTL = 24 * time.Hour

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("a JWT secret is required (-s flag or JWT_SECRET)")
	}
	secret := []byte(options.JWTSecret)

	windowStart, windowEnd, err := options.Window()
	if err != nil {
		zapLogger.Fatal("invalid conference window", zap.Error(err))
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for accounts, lists, and talks.
	accountRepo := repository.NewPostgresAccountRepository(postgresDB)
	listRepo := repository.NewPostgresTalkListRepository(postgresDB)
	talkRepo := repository.NewPostgresTalkRepository(postgresDB)

	// Initialize business-logic services.
	listService := service.NewTalkListService(listRepo, talkRepo)
	talkService := service.NewTalkService(talkRepo, listRepo, service.TalkConfig{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Rooms:       options.RoomCodes(),
		RatingMin:   options.RatingMin,
		RatingMax:   options.RatingMax,
	})
	scheduleService := service.NewScheduleService(listRepo, talkRepo)
	authService := service.NewAuthService(accountRepo, listService, secret, tokenTTL)

	// Create HTTP handlers for the API surface.
	authHandler := &http.AuthHandler{AuthService: authService}
	listHandler := &http.ListHandler{ListService: listService, ScheduleService: scheduleService}
	talkHandler := &http.TalkHandler{TalkService: talkService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, listHandler, talkHandler, secret, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
