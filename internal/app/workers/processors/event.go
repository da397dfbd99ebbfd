package processors

import (
	"context"
	"fmt"
	"francoggm/payment-gateway/internal/app/events"
	"francoggm/payment-gateway/internal/models"
)

type EventProcessor struct {
	publisher events.Publisher
}

func NewEventProcessor(publisher events.Publisher) *EventProcessor {
	return &EventProcessor{
		publisher: publisher,
	}
}

func (p *EventProcessor) ProcessEvent(ctx context.Context, event any) error {
	paymentEvent, ok := event.(*models.PaymentEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	return p.publisher.Publish(ctx, paymentEvent)
}
