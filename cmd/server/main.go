package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filebox/internal/api"
	"filebox/internal/config"
	"filebox/internal/platform/crypto"
	"filebox/internal/service"
	"filebox/internal/storage"
	"filebox/internal/store/mongo"
	"filebox/internal/store/redis"
)

// main is the entry point for the application.
func main() {
	if err := run(); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

// run initializes and starts the HTTP server.
func run() error {
	// =========================================================================
	// Configuration
	//
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := log.New(os.Stdout, "FILEBOX | ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger.Println("Configuration loaded")

	// =========================================================================
	// Database & Cache Connections
	//
	// Create a context with a timeout for the connection attempts.
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbClient, err := mongo.NewClient(dbCtx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer func() {
		if err := dbClient.Disconnect(context.Background()); err != nil {
			logger.Printf("Error disconnecting from DB: %v", err)
		}
	}()
	logger.Println("Database connection established")

	cacheClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("could not connect to session cache: %w", err)
	}
	defer func() {
		if err := cacheClient.Close(); err != nil {
			logger.Printf("Error disconnecting from cache: %v", err)
		}
	}()
	logger.Println("Session cache connection established")

	// =========================================================================
	// Initialize Dependencies (Dependency Injection)
	//
	// This is where we "wire" our application together.

	db := dbClient.Database(cfg.Mongo.Database)

	userStore := mongo.NewUserStore(db)
	if err := userStore.EnsureIndexes(dbCtx); err != nil {
		return fmt.Errorf("could not ensure user indexes: %w", err)
	}
	fileStore := mongo.NewFileStore(db)
	sessionStore := redis.NewSessionStore(cacheClient)

	var blobStore storage.BlobStore
	switch cfg.Storage.Type {
	case "s3":
		blobStore, err = storage.NewS3Store(dbCtx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("could not initialize S3 storage: %w", err)
		}
	default:
		blobStore = storage.NewDiskStore(cfg.Storage.FSDirectory)
	}

	passwords := crypto.NewBcryptManager(0)
	authService := service.NewAuthService(
		userStore,
		sessionStore,
		crypto.NewRandomTokenGenerator(),
		passwords,
	)
	userService := service.NewUserService(userStore, authService, passwords)
	fileService := service.NewFileService(fileStore, blobStore, authService)

	appHandler := api.NewAppHandler(dbClient, cacheClient, userStore, fileStore)
	userHandler := api.NewUserHandler(userService)
	authHandler := api.NewAuthHandler(authService)
	fileHandler := api.NewFileHandler(fileService)

	logger.Println("Dependencies initialized")

	// =========================================================================
	// HTTP Server Setup
	mux := http.NewServeMux()

	api.RegisterRoutes(mux, appHandler, userHandler, authHandler, fileHandler, logger)

	server := &http.Server{
		Addr:         cfg.HTTP.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// =========================================================================
	// Start Server & Graceful Shutdown

	shutdownErr := make(chan error)

	// Start the primary server (either HTTP or HTTPS).
	go func() {
		logger.Printf("Server starting on %s", server.Addr)
		if cfg.HTTP.KeyPath != "" && cfg.HTTP.CertPath != "" {
			shutdownErr <- server.ListenAndServeTLS(cfg.HTTP.CertPath, cfg.HTTP.KeyPath)
		} else {
			shutdownErr <- server.ListenAndServe()
		}
	}()

	// Listen for OS signals for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-shutdownErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Printf("Shutdown signal received: %s", sig)
	}

	// Attempt a graceful shutdown.
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Println("Server shut down gracefully")
	return nil
}
