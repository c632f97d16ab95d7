package api

import (
	"net/http"

	"github.com/Jasch-M/asyncmuseum/internal/models"
	"github.com/Jasch-M/asyncmuseum/internal/utils"
)

func (h *Handler) GetVisitorInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.VisitorInfo.GetVisitorInfo(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", info)
}

func (h *Handler) PutVisitorInfo(w http.ResponseWriter, r *http.Request) {
	var info models.VisitorInfo
	if !h.decodeBody(w, r, &info) {
		return
	}

	stored, err := h.VisitorInfo.PutVisitorInfo(r.Context(), info)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", stored)
}
