package handler

import (
	"net/http"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
)

type onboardingHandler struct {
	onboardingService *service.OnboardingService
}

func NewOnboardingHandler(onboardingService *service.OnboardingService) *onboardingHandler {
	return &onboardingHandler{onboardingService: onboardingService}
}

func (h *onboardingHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	view, err := h.onboardingService.Get(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *onboardingHandler) SaveAnswers(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var answers map[string]any
	if err := decodeJSON(r, &answers); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	view, err := h.onboardingService.SaveAnswers(user.ID, answers)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *onboardingHandler) Next(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	view, err := h.onboardingService.Next(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *onboardingHandler) Back(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	view, err := h.onboardingService.Back(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *onboardingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	result, err := h.onboardingService.Submit(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
