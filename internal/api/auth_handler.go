package api

import (
	"net/http"

	"filebox/internal/service"
)

// tokenHeader is the header every protected call carries its session token in.
const tokenHeader = "X-Token"

// AuthHandler holds the dependencies for session HTTP handlers
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler with its dependencies
func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

type connectResponse struct {
	Token string `json:"token"`
}

// Connect handles the GET /connect endpoint. Credentials arrive via HTTP
// Basic auth; success returns a fresh session token.
func (h *AuthHandler) Connect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok || email == "" || password == "" {
		writeJSON(w, http.StatusUnauthorized, NewUnauthorizedError())
		return
	}

	sess, err := h.service.Authenticate(r.Context(), email, password)
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, connectResponse{Token: sess.Token})
}

// Disconnect handles the GET /disconnect endpoint. Revoking a token that was
// never issued (or already revoked) is reported as Unauthorized, matching the
// uniform treatment of unknown tokens.
func (h *AuthHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	existed, err := h.service.Revoke(r.Context(), r.Header.Get(tokenHeader))
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}
	if !existed {
		writeJSON(w, http.StatusUnauthorized, NewUnauthorizedError())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
