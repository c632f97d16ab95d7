package api

import (
	"net/http"

	"github.com/Jasch-M/asyncmuseum/internal/models"
	"github.com/Jasch-M/asyncmuseum/internal/utils"
)

const msgContactSent = "Your message has been sent successfully. We'll get back to you soon!"

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactFormRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if _, err := h.Contact.Submit(r.Context(), req); err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, msgContactSent, nil)
}

func (h *Handler) ListContactSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.Contact.ListSubmissions(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", submissions)
}

func (h *Handler) MarkContactRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.Contact.MarkRead(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, msgContactNotFound)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Marked as read", nil)
}
