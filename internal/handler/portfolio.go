package handler

import (
	"net/http"
	"time"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
	"github.com/careerpathid/careerpath/internal/validation"
)

type portfolioHandler struct {
	portfolioService *service.PortfolioService
}

func NewPortfolioHandler(portfolioService *service.PortfolioService) *portfolioHandler {
	return &portfolioHandler{portfolioService: portfolioService}
}

// AddCertificate accepts multipart form data: title, issuer, issued_at
// (optional RFC 3339 date) and an optional file (image or PDF).
func (h *portfolioHandler) AddCertificate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(15 << 20)
	if err != nil {
		writeValidationError(w, "invalid multipart form")
		return
	}

	title := r.FormValue("title")
	issuer := r.FormValue("issuer")

	var issuedAt *time.Time
	if raw := r.FormValue("issued_at"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeValidationError(w, "issued_at must be in YYYY-MM-DD format")
			return
		}
		issuedAt = &parsed
	}

	file, header, err := r.FormFile("file")
	if err != nil && err != http.ErrMissingFile {
		writeValidationError(w, "invalid certificate file")
		return
	}
	if file != nil {
		defer file.Close()
	}
	if header != nil {
		if err := validation.ValidateFile(header, validation.ImageConstraints, validation.DocumentConstraints); err != nil {
			writeValidationError(w, err.Error())
			return
		}
	}

	cert, err := h.portfolioService.AddCertificate(user.ID, title, issuer, issuedAt, file, header)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cert)
}

func (h *portfolioHandler) Certificates(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	certs, err := h.portfolioService.Certificates(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, certs)
}

func (h *portfolioHandler) DeleteCertificate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.portfolioService.DeleteCertificate(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Featured    bool   `json:"featured"`
}

func (h *portfolioHandler) AddProject(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	project, err := h.portfolioService.AddProject(user.ID, service.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Featured:    req.Featured,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *portfolioHandler) Projects(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	projects, err := h.portfolioService.Projects(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

type featureRequest struct {
	Featured bool `json:"featured"`
}

func (h *portfolioHandler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req featureRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	project, err := h.portfolioService.SetFeatured(user.ID, r.PathValue("id"), req.Featured)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *portfolioHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.portfolioService.DeleteProject(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *portfolioHandler) Score(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	counts, score, err := h.portfolioService.Score(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"score":  score,
		"counts": counts,
	})
}
