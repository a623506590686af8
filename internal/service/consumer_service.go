package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"smartbyte-be/internal/websocket"
	"smartbyte-be/pkg/events"
	pkgNats "smartbyte-be/pkg/nats"

	"smartbyte-be/internal/constant"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process sales event bus. Each event is
// pushed to connected dashboards and exported to NATS for analytics; a NATS
// outage only costs the export, never the dashboard feed.
type consumerService struct {
	pubSub  *gochannel.GoChannel
	hub     *websocket.Hub
	natsPub *pkgNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	hub *websocket.Hub,
	natsPub *pkgNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:  pubSub,
		hub:     hub,
		natsPub: natsPub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, constant.SalesEventsTopic)
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

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope struct {
		EventType  string                 `json:"event_type"`
		OccurredAt string                 `json:"occurred_at"`
		Payload    map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		log.Printf("[ERROR] Failed to unmarshal sales event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.hub != nil {
		cs.hub.Broadcast(envelope.EventType, envelope.Payload)
	}

	if cs.natsPub != nil {
		occurredAt, err := time.Parse(time.RFC3339, envelope.OccurredAt)
		if err != nil {
			occurredAt = time.Now()
		}
		event := events.BaseEvent{
			Type:       envelope.EventType,
			Data:       envelope.Payload,
			OccurredAt: occurredAt,
		}
		if err := cs.natsPub.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to export event %s to NATS: %v", envelope.EventType, err)
		}
	}

	msg.Ack()
}
