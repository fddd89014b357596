package service

import (
	"context"
	"encoding/json"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	// PublishContentChange announces that a collection changed. Fire-and-forget
	// from the writer's perspective; the consumer rebuilds snapshots.
	PublishContentChange(ctx context.Context, collection, essaySlug string) error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
}

func NewPublisherService(pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
	}
}

func (s *publisherService) PublishContentChange(ctx context.Context, collection, essaySlug string) error {
	payload, err := json.Marshal(dto.ContentChangedMessage{
		Collection: collection,
		EssaySlug:  essaySlug,
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(constant.ContentEventsTopic, msg)
}
