package processors

import (
	"context"
	"francoggm/payment-gateway/internal/models"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []*models.PaymentEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event *models.PaymentEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func TestEventProcessorPublishes(t *testing.T) {
	publisher := &recordingPublisher{}
	processor := NewEventProcessor(publisher)

	event := &models.PaymentEvent{PaymentResponse: models.PaymentResponse{ID: "auth-1"}}
	require.NoError(t, processor.ProcessEvent(context.Background(), event))
	require.Equal(t, []*models.PaymentEvent{event}, publisher.events)
}

func TestEventProcessorRejectsUnknownEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	processor := NewEventProcessor(publisher)

	err := processor.ProcessEvent(context.Background(), "not an event")
	require.ErrorContains(t, err, "unexpected event type string")
	require.Empty(t, publisher.events)
}
