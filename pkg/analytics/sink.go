package analytics

import (
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// TopicEvents is the in-process watermill topic storefront events are
// published on.
const TopicEvents = "analytics_events"

// Sink is the fire-and-forget analytics contract. Emit must never block the
// caller and must never propagate an error back into business logic.
type Sink interface {
	Emit(eventName string, fields map[string]string)
}

// Envelope is the wire shape of one analytics event on the topic.
type Envelope struct {
	Event     string            `json:"event"`
	Fields    map[string]string `json:"fields"`
	EmittedAt time.Time         `json:"emitted_at"`
}

// WatermillSink publishes events onto an in-process pub/sub topic. The
// consumer side drains the topic and forwards to the configured backend, so
// a slow or absent backend can never stall a cart mutation.
type WatermillSink struct {
	publisher message.Publisher
	topic     string
}

func NewWatermillSink(publisher message.Publisher, topic string) *WatermillSink {
	return &WatermillSink{publisher: publisher, topic: topic}
}

func (s *WatermillSink) Emit(eventName string, fields map[string]string) {
	payload, err := json.Marshal(Envelope{
		Event:     eventName,
		Fields:    fields,
		EmittedAt: time.Now().UTC(),
	})
	if err != nil {
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event", eventName)

	go func() {
		_ = s.publisher.Publish(s.topic, msg)
	}()
}

// NopSink discards every event. Used by the console simulator and as a safe
// default when no pipeline is wired.
type NopSink struct{}

func (NopSink) Emit(string, map[string]string) {}
