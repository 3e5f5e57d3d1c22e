package service

import (
	"context"
	"encoding/json"

	"nextel-storefront-be/internal/pkg/logger"
	"nextel-storefront-be/pkg/analytics"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAnalyticsConsumerService interface {
	Consume(ctx context.Context) error
}

// analyticsConsumerService drains the in-process analytics topic and forwards
// each event to the configured backend. It is the only component that ever
// talks to the analytics backend, so producers stay fire-and-forget.
type analyticsConsumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	forwarder analytics.Forwarder
	log       logger.ILogger
}

func NewAnalyticsConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	forwarder analytics.Forwarder,
	log logger.ILogger,
) IAnalyticsConsumerService {
	return &analyticsConsumerService{
		pubSub:    pubSub,
		topicName: topicName,
		forwarder: forwarder,
		log:       log,
	}
}

func (cs *analyticsConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *analyticsConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Always ack: a malformed or unforwardable event is logged and dropped,
	// never redelivered into a retry loop.
	defer msg.Ack()

	var envelope analytics.Envelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.log.Warn("analytics", "dropping malformed analytics event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	if err := cs.forwarder.Forward(ctx, envelope); err != nil {
		cs.log.Warn("analytics", "failed to forward analytics event", map[string]interface{}{
			"event": envelope.Event,
			"error": err.Error(),
		})
	}
}
