package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
)

type wellnessHandler struct {
	wellnessService *service.WellnessService
}

func NewWellnessHandler(wellnessService *service.WellnessService) *wellnessHandler {
	return &wellnessHandler{wellnessService: wellnessService}
}

type checkInRequest struct {
	Mood    string `json:"mood"`
	Answers []int  `json:"answers"`
}

func (h *wellnessHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req checkInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	result, err := h.wellnessService.SubmitCheckIn(user.ID, req.Mood, req.Answers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *wellnessHandler) History(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	logs, err := h.wellnessService.History(user.ID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *wellnessHandler) Trend(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	month := time.Now()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			writeValidationError(w, "month must be in YYYY-MM format")
			return
		}
		month = parsed
	}

	trend, err := h.wellnessService.Trend(user.ID, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"trend": trend})
}
