package api

import (
	"context"
	"net/http"

	"filebox/internal/store"
)

// AlivenessChecker reports whether a backing service still responds.
type AlivenessChecker interface {
	Alive(ctx context.Context) bool
}

// AppHandler serves the liveness and stats endpoints.
type AppHandler struct {
	db        AlivenessChecker
	cache     AlivenessChecker
	userStore store.UserStore
	fileStore store.FileStore
}

// NewAppHandler creates a new AppHandler with its dependencies.
func NewAppHandler(db, cache AlivenessChecker, userStore store.UserStore, fileStore store.FileStore) *AppHandler {
	return &AppHandler{
		db:        db,
		cache:     cache,
		userStore: userStore,
		fileStore: fileStore,
	}
}

type statusResponse struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

type statsResponse struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// Status handles the GET /status endpoint.
func (h *AppHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Redis: h.cache.Alive(r.Context()),
		DB:    h.db.Alive(r.Context()),
	})
}

// Stats handles the GET /stats endpoint.
func (h *AppHandler) Stats(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.Count(r.Context())
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	files, err := h.fileStore.Count(r.Context())
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{Users: users, Files: files})
}
