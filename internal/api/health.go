package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Jasch-M/asyncmuseum/internal/utils"
)

const healthPingTimeout = 2 * time.Second

type healthStatus struct {
	Status string `json:"status"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			h.Logger.Error("HEALTH", fmt.Sprintf("database ping failed: %v", err))
			utils.WriteJSON(w, http.StatusServiceUnavailable, healthStatus{Status: "DOWN"})
			return
		}
	}
	utils.WriteJSON(w, http.StatusOK, healthStatus{Status: "UP"})
}
