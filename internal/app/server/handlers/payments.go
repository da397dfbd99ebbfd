package handlers

import (
	"errors"
	"francoggm/payment-gateway/internal/app/payment"
	"francoggm/payment-gateway/internal/app/validation"
	"francoggm/payment-gateway/internal/models"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type validationResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

func (h *Handlers) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.paymentService.CreatePayment(r.Context(), req)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			h.writeJSON(w, http.StatusBadRequest, validationResponse{Errors: verr.Fields})
			return
		}

		h.logger.Error("error processing payment", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Payment could not be processed")
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.paymentService.GetPayment(r.Context(), id)
	if errors.Is(err, payment.ErrPaymentNotFound) {
		h.writeError(w, http.StatusNotFound, "Payment not found")
		return
	}
	if err != nil {
		h.logger.Error("error getting payment", zap.String("payment_id", id), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Payment could not be retrieved")
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}
