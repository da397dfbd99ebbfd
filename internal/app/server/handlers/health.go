package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.paymentService.Ready(r.Context()); err != nil {
		h.logger.Warn("payment store not ready", zap.Error(err))
		h.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
