package storage

import (
	"context"
	"fmt"
	"francoggm/payment-gateway/internal/models"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayment(id string) models.Payment {
	return models.Payment{
		ID:                 id,
		Status:             models.StatusAuthorized,
		CardNumberLastFour: "8877",
		ExpiryMonth:        4,
		ExpiryYear:         2030,
		Currency:           "GBP",
		Amount:             100,
	}
}

func TestMemoryStoreAddGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Add(ctx, testPayment("p-1")))

	got, err := store.Get(ctx, "p-1")
	require.NoError(t, err)
	require.Equal(t, testPayment("p-1"), got)
	require.NoError(t, store.Ping(ctx))
}

func TestMemoryStoreNotFound(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Add(ctx, testPayment("p-1")))

	dup := testPayment("p-1")
	dup.Status = models.StatusDeclined
	require.ErrorIs(t, store.Add(ctx, dup), ErrAlreadyExists)

	got, err := store.Get(ctx, "p-1")
	require.NoError(t, err)
	require.Equal(t, models.StatusAuthorized, got.Status)
}

func TestMemoryStoreConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("p-%d", i)
			require.NoError(t, store.Add(ctx, testPayment(id)))
			_, err := store.Get(ctx, id)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, writers, store.Len())
}
