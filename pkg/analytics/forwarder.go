package analytics

import (
	"context"

	"nextel-storefront-be/internal/pkg/logger"
	"nextel-storefront-be/pkg/events"
	pktNats "nextel-storefront-be/pkg/nats"
)

// Forwarder ships a drained analytics event to its final destination.
type Forwarder interface {
	Forward(ctx context.Context, envelope Envelope) error
}

// NatsForwarder publishes analytics events to the NATS ANALYTICS stream for
// multi-instance deployments.
type NatsForwarder struct {
	publisher *pktNats.Publisher
}

func NewNatsForwarder(publisher *pktNats.Publisher) *NatsForwarder {
	return &NatsForwarder{publisher: publisher}
}

func (f *NatsForwarder) Forward(ctx context.Context, envelope Envelope) error {
	data := make(map[string]interface{}, len(envelope.Fields)+1)
	for k, v := range envelope.Fields {
		data[k] = v
	}
	data["emitted_at"] = envelope.EmittedAt

	return f.publisher.Publish(ctx, events.BaseEvent{
		Type:       envelope.Event,
		Data:       data,
		OccurredAt: envelope.EmittedAt,
	})
}

// LogForwarder writes analytics events to the structured log. Default for
// standalone/demo deployments with no NATS.
type LogForwarder struct {
	logger logger.ILogger
}

func NewLogForwarder(log logger.ILogger) *LogForwarder {
	return &LogForwarder{logger: log}
}

func (f *LogForwarder) Forward(_ context.Context, envelope Envelope) error {
	details := make(map[string]interface{}, len(envelope.Fields))
	for k, v := range envelope.Fields {
		details[k] = v
	}
	f.logger.Info("Analytics", envelope.Event, details)
	return nil
}
