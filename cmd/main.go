package main

import (
	"context"
	"cooksync/auth"
	"cooksync/infrastructure/ws"
	"cooksync/moderation"
	"cooksync/observability"
	"cooksync/repositories"
	"cooksync/runtime"
	"cooksync/runtime/workers"
	"cooksync/services"
	"cooksync/sink"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting. This pattern is preferred over calling
// os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the HTTP server and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	charReplacement, err := CharacterRune(config.ModerationCharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation (censored words + Aho-Corasick automaton)
	censored, err := moderation.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("loading censored words failed: %w", err)
	}
	log.Info(fmt.Sprintf("%d censored words loaded [%s]",
		len(censored.Words), strings.Join(censored.Languages, ",")))

	moderator, err := moderation.NewModerator(censored.Words, charReplacement)
	if err != nil {
		return fmt.Errorf("building moderator failed: %w", err)
	}

	// 4. Core runtime: registry, hub, coordinator, supervised workers
	monitor := observability.NewMonitor()
	registry := runtime.NewRegistry()
	hub := runtime.NewHub(log, registry, monitor)
	recipeRepository := repositories.NewRecipeRepository(db, log)

	coordinator := runtime.NewCoordinator(
		log, registry, recipeRepository, hub,
		moderator, monitor, config.BufferSize,
	)

	diskSink := sink.NewDiskSink(
		repositories.NewSessionRepository(db, log),
		repositories.NewShareRepository(db, log),
		log,
	)

	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	supervisor.Add(
		coordinator,
		workers.NewPersistenceWorker(coordinator.Records(), diskSink, log),
		workers.NewEvictionWorker(coordinator, config.SessionTTL, config.EvictionInterval, log),
		workers.NewStatsWorker(log, monitor, config.StatsInterval),
	)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go supervisor.Run(ctx)

	// 6. HTTP / WebSocket server
	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)
	identities := auth.NewIdentityProvider(tokens)
	service := services.NewCollabService(coordinator, registry)
	server := ws.NewServer(log, identities, service, monitor, config.ConnectionBufferSize)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: server.Router()}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting websocket server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	supervisor.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
