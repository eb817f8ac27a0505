package handler

import (
	"net/http"
	"strconv"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/service"
)

type communityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *communityHandler {
	return &communityHandler{communityService: communityService}
}

type postRequest struct {
	Content string `json:"content"`
}

func (h *communityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	post, err := h.communityService.CreatePost(user.ID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *communityHandler) Feed(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	posts, total, err := h.communityService.Feed(user.ID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: posts, Total: total})
}

// DeletePost removes the caller's own post; admins can remove any post.
func (h *communityHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	postID := r.PathValue("id")

	var err error
	if user.Role == model.RoleAdmin {
		err = h.communityService.DeleteAnyPost(postID)
	} else {
		err = h.communityService.DeletePost(user.ID, postID)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *communityHandler) Like(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.communityService.Like(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "liked"})
}

func (h *communityHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.communityService.Unlike(user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "unliked"})
}
