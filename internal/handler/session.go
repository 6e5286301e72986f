package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/service"
)

// SessionHandler handles HTTP requests that open sessions.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// HandleOpen handles POST /api/v1/sessions requests.
func (h *SessionHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Open()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
