package api

import (
	"net/http"

	"github.com/Jasch-M/asyncmuseum/internal/models"
	"github.com/Jasch-M/asyncmuseum/internal/utils"
)

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.ListEvents(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", events)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	event, err := h.Events.GetEvent(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, msgEventNotFound)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", event)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if !h.decodeBody(w, r, &event) {
		return
	}

	created, err := h.Events.CreateEvent(r.Context(), event)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, "", created)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var event models.Event
	if !h.decodeBody(w, r, &event) {
		return
	}

	updated, err := h.Events.UpdateEvent(r.Context(), id, event)
	if err != nil {
		h.writeServiceError(w, r, err, msgEventNotFound)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", updated)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.Events.DeleteEvent(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, msgEventNotFound)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Event deleted successfully", nil)
}
