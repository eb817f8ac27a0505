package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
)

type consultationHandler struct {
	consultationService *service.ConsultationService
}

func NewConsultationHandler(consultationService *service.ConsultationService) *consultationHandler {
	return &consultationHandler{consultationService: consultationService}
}

type bookRequest struct {
	Topic       string    `json:"topic"`
	Notes       string    `json:"notes"`
	Plan        string    `json:"plan"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

func (h *consultationHandler) Book(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req bookRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	consultation, err := h.consultationService.Book(user.ID, req.Topic, req.Notes, req.Plan, req.ScheduledAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, consultation)
}

func (h *consultationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	consultations, err := h.consultationService.ByUser(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, consultations)
}

func (h *consultationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.consultationService.Cancel(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// List is the counselor/admin view across all users.
func (h *consultationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	consultations, total, err := h.consultationService.List(limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: consultations, Total: total})
}

func (h *consultationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	err := h.consultationService.Complete(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}
