package main

import (
	"context"
	"francoggm/payment-gateway/internal/config"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewStoreMemory(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.StorageMemory

	store, closeStore, err := newStore(context.Background(), cfg)
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, store.Ping(context.Background()))
}

func TestRunReturnsStorageError(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Backend = "cassandra"

	core, logs := observer.New(zap.InfoLevel)

	err := run(cfg, zap.New(core))
	require.ErrorContains(t, err, `failed to initialize cassandra storage: unknown storage backend "cassandra"`)
	require.Zero(t, logs.FilterMessage("server listening").Len())
}
