package handler

import (
	"net/http"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
)

type skillHandler struct {
	skillService *service.SkillService
}

func NewSkillHandler(skillService *service.SkillService) *skillHandler {
	return &skillHandler{skillService: skillService}
}

func (h *skillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, total, err := h.skillService.ListSkills(catalogOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: skills, Total: total})
}

type addSkillRequest struct {
	SkillID     string `json:"skill_id"`
	Proficiency string `json:"proficiency"`
}

func (h *skillHandler) AddUserSkill(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req addSkillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	view, err := h.skillService.AddUserSkill(user.ID, req.SkillID, req.Proficiency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

type trainRequest struct {
	ProgressPercentage int     `json:"progress_percentage"`
	HoursAdded         float64 `json:"hours_added"`
}

func (h *skillHandler) Train(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req trainRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	view, err := h.skillService.Train(user.ID, r.PathValue("id"), req.ProgressPercentage, req.HoursAdded)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *skillHandler) MySkills(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	views, level, err := h.skillService.UserSkills(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"skills": views,
		"level":  level,
	})
}

func (h *skillHandler) DeleteUserSkill(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.skillService.DeleteUserSkill(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type skillRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (h *skillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	skill, err := h.skillService.CreateSkill(req.Name, req.Category, req.Description)
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, skill)
}

func (h *skillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	skill, err := h.skillService.SkillByID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	skill.Name = req.Name
	skill.Category = req.Category
	skill.Description = req.Description

	err = h.skillService.UpdateSkill(skill)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (h *skillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.skillService.DeleteSkill(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
