package handler

import (
	"net/http"
	"strconv"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// SavedHandler handles HTTP requests for the durable password log.
type SavedHandler struct {
	service *service.ArchiveService
}

// NewSavedHandler creates a new SavedHandler.
func NewSavedHandler(svc *service.ArchiveService) *SavedHandler {
	return &SavedHandler{service: svc}
}

// HandleSave handles POST /api/v1/saved requests. Invalid passwords get 400; a
// storage failure is reported as {"saved": false} with 200.
func (h *SavedHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req model.SaveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.service.Validate(req.Password); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Save(r.Context(), req.Password))
}

// HandleList handles GET /api/v1/saved?limit=N requests.
func (h *SavedHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse("limit must be a positive integer"))
			return
		}
		limit = min(n, maxListLimit)
	}

	entries, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
