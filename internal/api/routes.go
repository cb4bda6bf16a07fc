package api

import (
	"log"
	"net/http"
)

// RegisterRoutes sets up all the application's routes on the given ServeMux.
func RegisterRoutes(
	mux *http.ServeMux,
	appHandler *AppHandler,
	userHandler *UserHandler,
	authHandler *AuthHandler,
	fileHandler *FileHandler,
	logger *log.Logger,
) {
	// --- App routes ---
	mux.HandleFunc("GET /status", appHandler.Status)
	mux.HandleFunc("GET /stats", appHandler.Stats)

	// --- User routes ---
	mux.HandleFunc("POST /users", userHandler.CreateUser)
	mux.HandleFunc("GET /users/me", userHandler.GetMe)

	// --- Session routes ---
	mux.HandleFunc("GET /connect", authHandler.Connect)
	mux.HandleFunc("GET /disconnect", authHandler.Disconnect)

	// --- File routes ---
	mux.HandleFunc("POST /files", fileHandler.Upload)
	mux.HandleFunc("GET /files", fileHandler.Index)
	mux.HandleFunc("GET /files/{id}", fileHandler.Show)
	mux.HandleFunc("PUT /files/{id}/publish", fileHandler.Publish)
	mux.HandleFunc("PUT /files/{id}/unpublish", fileHandler.Unpublish)

	logger.Println("Registered routes")
}
