package storage

import (
	"context"
	"errors"
	"francoggm/payment-gateway/internal/models"
)

var (
	ErrNotFound      = errors.New("payment not found")
	ErrAlreadyExists = errors.New("payment already exists")
)

// Store keeps processed payments. Implementations are safe for concurrent use
// and never overwrite a stored payment.
type Store interface {
	Add(ctx context.Context, payment models.Payment) error
	Get(ctx context.Context, id string) (models.Payment, error)
	Ping(ctx context.Context) error
}
