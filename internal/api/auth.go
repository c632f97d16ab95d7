package api

import (
	"net/http"

	"github.com/Jasch-M/asyncmuseum/internal/models"
	"github.com/Jasch-M/asyncmuseum/internal/utils"
)

// Login trusts the identity in the body; the provider token is not
// verified against the provider.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	resp, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "", resp)
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotImplemented, msgNotImplemented)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, "Logged out successfully", nil)
}
