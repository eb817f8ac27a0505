package handler

import (
	"net/http"
	"strconv"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/service"
)

type careerHandler struct {
	careerService *service.CareerService
}

func NewCareerHandler(careerService *service.CareerService) *careerHandler {
	return &careerHandler{careerService: careerService}
}

// listResponse is the shared pagination envelope for catalog listings.
type listResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

// catalogOptions reads ?q=, ?limit= and ?offset= with sane bounds.
func catalogOptions(r *http.Request) repository.CatalogListOptions {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return repository.CatalogListOptions{
		Search: r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	}
}

func (h *careerHandler) List(w http.ResponseWriter, r *http.Request) {
	careers, total, err := h.careerService.List(catalogOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: careers, Total: total})
}

func (h *careerHandler) ByID(w http.ResponseWriter, r *http.Request) {
	career, err := h.careerService.ByID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, career)
}

func (h *careerHandler) Select(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.careerService.Select(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "selected"})
}

func (h *careerHandler) Unselect(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.careerService.Unselect(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "unselected"})
}

func (h *careerHandler) MyCareers(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	careers, err := h.careerService.SelectedByUser(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, careers)
}

type careerRequest struct {
	Title          string   `json:"title"`
	Field          string   `json:"field"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	SalaryRange    string   `json:"salary_range"`
	DemandLevel    string   `json:"demand_level"`
}

func (req careerRequest) input() service.CareerInput {
	return service.CareerInput{
		Title:          req.Title,
		Field:          req.Field,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		SalaryRange:    req.SalaryRange,
		DemandLevel:    req.DemandLevel,
	}
}

func (h *careerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req careerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	career, err := h.careerService.Create(req.input())
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, career)
}

func (h *careerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req careerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	career, err := h.careerService.Update(r.PathValue("id"), req.input())
	if err != nil {
		if err == repository.ErrCareerNotFound {
			writeError(w, err)
			return
		}
		writeValidationError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, career)
}

func (h *careerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.careerService.Delete(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
