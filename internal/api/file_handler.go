package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"filebox/internal/domain"
	"filebox/internal/service"
)

// FileHandler holds the dependencies for file-related HTTP handlers.
type FileHandler struct {
	service service.FileService
}

// NewFileHandler creates a new FileHandler with its dependencies.
func NewFileHandler(svc service.FileService) *FileHandler {
	return &FileHandler{service: svc}
}

// --- Request/Response Structs ---

type uploadFileRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"` // base64-encoded payload, absent for folders
}

// --- Handlers ---

// Upload handles the POST /files endpoint.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, NewBadRequestError("Invalid request body"))
		return
	}

	var payload []byte
	if req.Data != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, NewBadRequestError("Invalid data encoding"))
			return
		}
		payload = decoded
	}

	file, err := h.service.Upload(r.Context(), r.Header.Get(tokenHeader), service.UploadRequest{
		Name:     req.Name,
		Kind:     domain.Kind(req.Type),
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     payload,
	})
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	writeJSON(w, http.StatusCreated, file)
}

// Show handles the GET /files/{id} endpoint.
func (h *FileHandler) Show(w http.ResponseWriter, r *http.Request) {
	file, err := h.service.Get(r.Context(), r.Header.Get(tokenHeader), r.PathValue("id"))
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, file)
}

// Index handles the GET /files endpoint with parentId and page query
// parameters.
func (h *FileHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	parentID := query.Get("parentId")
	page, _ := strconv.Atoi(query.Get("page"))

	files, err := h.service.List(r.Context(), r.Header.Get(tokenHeader), parentID, page)
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	// Ensure we return an empty array `[]` instead of `null` when nothing
	// matches.
	if files == nil {
		files = []*domain.FileEntity{}
	}

	writeJSON(w, http.StatusOK, files)
}

// Publish handles the PUT /files/{id}/publish endpoint.
func (h *FileHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, true)
}

// Unpublish handles the PUT /files/{id}/unpublish endpoint.
func (h *FileHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, false)
}

func (h *FileHandler) setPublic(w http.ResponseWriter, r *http.Request, public bool) {
	file, err := h.service.SetPublic(r.Context(), r.Header.Get(tokenHeader), r.PathValue("id"), public)
	if err != nil {
		apiErr := FromServiceError(err)
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, file)
}
