package api

import (
	"net/http"

	"github.com/Jasch-M/asyncmuseum/internal/models"
	"github.com/Jasch-M/asyncmuseum/internal/utils"
)

func (h *Handler) ListExhibits(w http.ResponseWriter, r *http.Request) {
	exhibits, err := h.Exhibits.ListExhibits(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", exhibits)
}

func (h *Handler) GetExhibit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	exhibit, err := h.Exhibits.GetExhibit(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, msgExhibitNotFound)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", exhibit)
}

func (h *Handler) CreateExhibit(w http.ResponseWriter, r *http.Request) {
	var exhibit models.Exhibit
	if !h.decodeBody(w, r, &exhibit) {
		return
	}

	created, err := h.Exhibits.CreateExhibit(r.Context(), exhibit)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, "", created)
}

func (h *Handler) UpdateExhibit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var exhibit models.Exhibit
	if !h.decodeBody(w, r, &exhibit) {
		return
	}

	updated, err := h.Exhibits.UpdateExhibit(r.Context(), id, exhibit)
	if err != nil {
		h.writeServiceError(w, r, err, msgExhibitNotFound)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", updated)
}

func (h *Handler) DeleteExhibit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.Exhibits.DeleteExhibit(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, msgExhibitNotFound)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Exhibit deleted successfully", nil)
}
