package handler

import (
	"net/http"
	"time"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
)

type evaluationHandler struct {
	evaluationService *service.EvaluationService
}

func NewEvaluationHandler(evaluationService *service.EvaluationService) *evaluationHandler {
	return &evaluationHandler{evaluationService: evaluationService}
}

func (h *evaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	report, err := h.evaluationService.Evaluate(user.ID, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
