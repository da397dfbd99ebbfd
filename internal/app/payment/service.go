package payment

import (
	"context"
	"errors"
	"fmt"
	"francoggm/payment-gateway/internal/app/bank"
	"francoggm/payment-gateway/internal/app/metrics"
	"francoggm/payment-gateway/internal/app/storage"
	"francoggm/payment-gateway/internal/app/validation"
	"francoggm/payment-gateway/internal/models"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProcessingFailed = fmt.Errorf("payment processing failed")
	ErrPaymentNotFound  = fmt.Errorf("payment not found")
)

type BankClient interface {
	Authorize(ctx context.Context, req models.AuthorizationRequest) (models.AuthorizationResult, error)
}

// EventQueue accepts payment events without blocking. Enqueue reports false
// when the event was not accepted.
type EventQueue interface {
	Enqueue(event any) bool
}

type Service struct {
	validator *validation.Validator
	bank      BankClient
	store     storage.Store
	events    EventQueue
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewService wires the processing pipeline. A nil events queue disables payment events.
func NewService(validator *validation.Validator, bank BankClient, store storage.Store, events EventQueue, metrics *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		validator: validator,
		bank:      bank,
		store:     store,
		events:    events,
		metrics:   metrics,
		logger:    logger.Named("payment"),
	}
}

// CreatePayment validates the request, asks the bank for an authorization and
// stores the outcome. Declined and rejected payments are stored too.
func (s *Service) CreatePayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResponse, error) {
	if err := s.validator.Check(req); err != nil {
		s.metrics.ValidationFailed()
		return models.PaymentResponse{}, err
	}

	authReq := models.AuthorizationRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: bank.FormatExpiry(req.ExpiryMonth, req.ExpiryYear),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}

	started := time.Now()
	result, err := s.bank.Authorize(ctx, authReq)
	s.metrics.ObserveBankCall(started)
	if err != nil {
		s.metrics.BankFailed(bankFailureReason(err))
		s.logger.Error("bank authorization failed",
			zap.String("last_four", lastFour(req.CardNumber)),
			zap.Error(err),
		)
		return models.PaymentResponse{}, fmt.Errorf("%w: %w", ErrProcessingFailed, err)
	}

	payment := models.Payment{
		ID:                 paymentID(result),
		Status:             Decide(result),
		CardNumberLastFour: lastFour(req.CardNumber),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
	}

	if err := s.store.Add(ctx, payment); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			s.logger.Error("bank reused an authorization code, payment not recorded",
				zap.String("payment_id", payment.ID),
				zap.String("authorization_code", payment.ID),
				zap.String("status", string(payment.Status)),
				zap.String("last_four", payment.CardNumberLastFour),
				zap.Int64("amount", payment.Amount),
				zap.String("currency", payment.Currency),
			)
		}
		return models.PaymentResponse{}, fmt.Errorf("failed to store payment %s: %w", payment.ID, err)
	}

	s.metrics.PaymentProcessed(string(payment.Status))
	s.logger.Info("payment processed",
		zap.String("payment_id", payment.ID),
		zap.String("status", string(payment.Status)),
		zap.String("last_four", payment.CardNumberLastFour),
	)

	s.publish(payment)

	return payment.Response(), nil
}

func (s *Service) GetPayment(ctx context.Context, id string) (models.PaymentResponse, error) {
	payment, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return models.PaymentResponse{}, fmt.Errorf("%w: %w", ErrPaymentNotFound, err)
	}
	if err != nil {
		return models.PaymentResponse{}, err
	}

	return payment.Response(), nil
}

// Ready reports whether the payment store can be reached.
func (s *Service) Ready(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// publish never blocks the request path: events the queue does not accept are dropped.
func (s *Service) publish(payment models.Payment) {
	if s.events == nil {
		return
	}

	event := &models.PaymentEvent{
		PaymentResponse: payment.Response(),
		ProcessedAt:     time.Now().UTC(),
	}

	if !s.events.Enqueue(event) {
		s.metrics.EventDropped()
		s.logger.Warn("payment event not accepted, dropping event", zap.String("payment_id", payment.ID))
	}
}

func paymentID(result models.AuthorizationResult) string {
	if ref, ok := result.(models.Referenced); ok {
		return ref.Code
	}

	return uuid.NewString()
}

func lastFour(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}

	return cardNumber[len(cardNumber)-4:]
}

func bankFailureReason(err error) string {
	if errors.Is(err, bank.ErrUnparsableResponse) {
		return "unparsable"
	}

	return "unavailable"
}
