package handler

import (
	"net/http"
	"strconv"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/service"
)

type userHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService) *userHandler {
	return &userHandler{
		userService: userService,
		authService: authService,
	}
}

// List is the admin user listing with search and role filter.
func (h *userHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	users, total, err := h.userService.List(repository.UserListOptions{
		Search: r.URL.Query().Get("q"),
		Role:   r.URL.Query().Get("role"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	for _, u := range users {
		u.PasswordHash = nil
	}

	writeJSON(w, http.StatusOK, listResponse{Items: users, Total: total})
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

func (h *userHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	err := h.userService.UpdateRole(r.PathValue("id"), req.Role)
	if err != nil {
		if err == repository.ErrUserNotFound {
			writeError(w, err)
			return
		}
		writeValidationError(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *userHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	err := h.userService.DeleteAccount(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *userHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	err := h.userService.UpdatePassword(user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteAccount removes the caller's own account and signs them out.
func (h *userHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.userService.DeleteAccount(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.authService.ClearJWTCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
