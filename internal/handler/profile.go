package handler

import (
	"log/slog"
	"net/http"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/service"
	"github.com/careerpathid/careerpath/internal/validation"
)

type profileHandler struct {
	profileService *service.ProfileService
	fileService    *service.FileService
}

func NewProfileHandler(profileService *service.ProfileService, fileService *service.FileService) *profileHandler {
	return &profileHandler{
		profileService: profileService,
		fileService:    fileService,
	}
}

type profileResponse struct {
	*model.Profile
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (h *profileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, err := h.profileService.ByUserID(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.response(user, profile))
}

type profileUpdateRequest struct {
	Name           string   `json:"name"`
	University     string   `json:"university"`
	Major          string   `json:"major"`
	GraduationYear *int     `json:"graduation_year"`
	Bio            string   `json:"bio"`
	Interests      []string `json:"interests"`
}

func (h *profileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req profileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	profile, err := h.profileService.Update(user.ID, service.ProfileUpdate{
		Name:           req.Name,
		University:     req.University,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
		Bio:            req.Bio,
		Interests:      req.Interests,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.response(user, profile))
}

// UploadAvatar replaces the user's avatar. Images only, stored public.
func (h *profileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(10 << 20)
	if err != nil {
		writeValidationError(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeValidationError(w, "avatar file is required")
		return
	}
	defer file.Close()

	err = validation.ValidateFile(header, validation.ImageConstraints)
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	err = h.fileService.DeleteUserAvatar(user.ID)
	if err != nil {
		slog.Warn("failed to delete previous avatar", "error", err, "user_id", user.ID)
	}

	uploaded, err := h.fileService.Upload(user.ID, "user", user.ID, model.FileTypeAvatar, file, header, true)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"file_id":    uploaded.ID,
		"avatar_url": h.fileService.URL(uploaded),
	})
}

func (h *profileHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.fileService.DeleteUserAvatar(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *profileHandler) response(user *model.User, profile *model.Profile) profileResponse {
	resp := profileResponse{Profile: profile, Email: user.Email}
	if avatar, err := h.fileService.Avatar("user", user.ID); err == nil {
		resp.AvatarURL = h.fileService.URL(avatar)
	}
	return resp
}
