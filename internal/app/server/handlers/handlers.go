package handlers

import (
	"context"
	"francoggm/payment-gateway/internal/models"
	"net/http"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (models.PaymentResponse, error)
	Ready(ctx context.Context) error
}

type Handlers struct {
	paymentService PaymentService
	logger         *zap.Logger
}

func NewHandlers(paymentService PaymentService, logger *zap.Logger) *Handlers {
	return &Handlers{
		paymentService: paymentService,
		logger:         logger.Named("handlers"),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := sonic.Marshal(body)
	if err != nil {
		h.logger.Error("error encoding response", zap.Error(err))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Debug("error writing response", zap.Error(err))
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
