package handler

import (
	"net/http"
	"time"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
)

type jobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *jobHandler {
	return &jobHandler{jobService: jobService}
}

func (h *jobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, total, err := h.jobService.List(catalogOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: jobs, Total: total})
}

func (h *jobHandler) ByID(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.ByID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *jobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	application, err := h.jobService.Apply(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, application)
}

func (h *jobHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.jobService.Save(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

func (h *jobHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.jobService.Unsave(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// MyJobs returns both applications and bookmarks in one payload; the
// client renders them as two tabs.
func (h *jobHandler) MyJobs(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	applications, err := h.jobService.Applications(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	saved, err := h.jobService.SavedJobs(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"applications": applications,
		"saved":        saved,
	})
}

type jobRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Type        string     `json:"type"`
	SalaryRange string     `json:"salary_range"`
	Description string     `json:"description"`
	PostedAt    *time.Time `json:"posted_at"`
}

func (h *jobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	postedAt := time.Now()
	if req.PostedAt != nil {
		postedAt = *req.PostedAt
	}

	job, err := h.jobService.Create(service.JobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Type:        req.Type,
		SalaryRange: req.SalaryRange,
		Description: req.Description,
		PostedAt:    postedAt,
	})
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (h *jobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.jobService.Delete(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
