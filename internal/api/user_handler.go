package api

import (
	"encoding/json"
	"net/http"

	"filebox/internal/service"
)

// UserHandler holds the dependencies for user-related HTTP handlers
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler with its dependencies
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// ---Request/Response Structs ---

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Handlers ---

// CreateUser handles the POST /users endpoint
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, NewBadRequestError("Invalid request body"))
		return
	}

	user, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	writeJSON(w, http.StatusCreated, user.ToPublic())
}

// GetMe handles the GET /users/me endpoint
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetMe(r.Context(), r.Header.Get(tokenHeader))
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, user.ToPublic())
}

// --- Helper Functions ---

// writeJSON is a utility for sending JSON responses with a given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
