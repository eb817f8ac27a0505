package handler

import (
	"net/http"
	"time"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
)

type targetHandler struct {
	targetService *service.TargetService
}

func NewTargetHandler(targetService *service.TargetService) *targetHandler {
	return &targetHandler{targetService: targetService}
}

type targetRequest struct {
	Month       string `json:"month"`
	Description string `json:"description"`
}

func (h *targetHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req targetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	if req.Month == "" {
		req.Month = time.Now().Format("2006-01")
	}

	target, err := h.targetService.Create(user.ID, req.Month, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, target)
}

func (h *targetHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	targets, err := h.targetService.ByMonth(user.ID, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, targets)
}

func (h *targetHandler) Achieve(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.targetService.MarkAchieved(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "achieved"})
}

func (h *targetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.targetService.Delete(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
