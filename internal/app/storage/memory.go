package storage

import (
	"context"
	"francoggm/payment-gateway/internal/models"
	"sync"
)

type MemoryStore struct {
	mu       sync.RWMutex
	payments map[string]models.Payment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		payments: make(map[string]models.Payment),
	}
}

func (s *MemoryStore) Add(_ context.Context, payment models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.payments[payment.ID]; exists {
		return ErrAlreadyExists
	}
	s.payments[payment.ID] = payment

	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Payment, error) {
	s.mu.RLock()
	payment, ok := s.payments[id]
	s.mu.RUnlock()

	if !ok {
		return models.Payment{}, ErrNotFound
	}

	return payment, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.payments)
}
