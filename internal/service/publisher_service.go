package service

import (
	"context"
	"encoding/json"
	"time"

	"smartbyte-be/internal/constant"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishSalesEvent(ctx context.Context, eventType string, payload map[string]interface{}) error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
}

func NewPublisherService(pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
	}
}

// PublishSalesEvent puts one event on the in-process bus. The consumer side
// fans it out to dashboards and the external broker; the request path never
// blocks on either.
func (p *publisherService) PublishSalesEvent(ctx context.Context, eventType string, payload map[string]interface{}) error {
	envelope := map[string]interface{}{
		"event_type":  eventType,
		"occurred_at": time.Now().UTC().Format(time.RFC3339),
		"payload":     payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	return p.pubSub.Publish(constant.SalesEventsTopic, msg)
}
