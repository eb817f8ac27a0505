package handler

import (
	"net/http"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
)

type courseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *courseHandler {
	return &courseHandler{courseService: courseService}
}

func (h *courseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, total, err := h.courseService.List(catalogOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: courses, Total: total})
}

func (h *courseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	enrollment, err := h.courseService.Enroll(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, enrollment)
}

func (h *courseHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	enrollment, err := h.courseService.Complete(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, enrollment)
}

func (h *courseHandler) MyCourses(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	enrollments, err := h.courseService.Enrollments(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, enrollments)
}

type courseRequest struct {
	Title         string  `json:"title"`
	Provider      string  `json:"provider"`
	URL           string  `json:"url"`
	DurationHours float64 `json:"duration_hours"`
	Description   string  `json:"description"`
}

func (h *courseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req courseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	course, err := h.courseService.Create(service.CourseInput{
		Title:         req.Title,
		Provider:      req.Provider,
		URL:           req.URL,
		DurationHours: req.DurationHours,
		Description:   req.Description,
	})
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, course)
}

func (h *courseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.courseService.Delete(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
