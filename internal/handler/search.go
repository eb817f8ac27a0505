package handler

import (
	"net/http"

	"github.com/careerpathid/careerpath/internal/service"
)

type searchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *searchHandler {
	return &searchHandler{searchService: searchService}
}

func (h *searchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.searchService.Search(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
