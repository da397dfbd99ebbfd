package storage

import (
	"context"
	"errors"
	"fmt"
	"francoggm/payment-gateway/internal/models"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const paymentsKey = "payments"

type RedisStore struct {
	cache *redis.Client
}

func NewRedisStore(cache *redis.Client) *RedisStore {
	return &RedisStore{
		cache: cache,
	}
}

func (s *RedisStore) Add(ctx context.Context, payment models.Payment) error {
	payload, err := marshalPayment(payment)
	if err != nil {
		return err
	}

	created, err := s.cache.HSetNX(ctx, paymentsKey, payment.ID, payload).Result()
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", payment.ID, err)
	}
	if !created {
		return ErrAlreadyExists
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (models.Payment, error) {
	data, err := s.cache.HGet(ctx, paymentsKey, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Payment{}, ErrNotFound
	}
	if err != nil {
		return models.Payment{}, fmt.Errorf("failed to get payment %s: %w", id, err)
	}

	var payment models.Payment
	if err := sonic.ConfigFastest.Unmarshal(data, &payment); err != nil {
		return models.Payment{}, fmt.Errorf("failed to decode payment %s: %w", id, err)
	}

	return payment, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.cache.Ping(ctx).Err()
}

func marshalPayment(payment models.Payment) ([]byte, error) {
	data, err := sonic.ConfigFastest.Marshal(payment)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment %s: %w", payment.ID, err)
	}

	return data, nil
}
