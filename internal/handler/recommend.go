package handler

import (
	"net/http"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
)

type recommendHandler struct {
	recommendService *service.RecommendService
}

func NewRecommendHandler(recommendService *service.RecommendService) *recommendHandler {
	return &recommendHandler{recommendService: recommendService}
}

type recommendRequest struct {
	Limit int `json:"limit"`
}

func (h *recommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req recommendRequest
	if err := decodeJSON(r, &req); err != nil && r.ContentLength > 0 {
		writeValidationError(w, "invalid request body")
		return
	}

	recommendations, err := h.recommendService.Recommend(user.ID, req.Limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": recommendations})
}
