package service

import (
	"context"
	"encoding/json"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// SnapshotBroadcaster pushes a snapshot to every subscriber of a topic. The
// websocket hub satisfies this.
type SnapshotBroadcaster interface {
	Broadcast(topic string, envelope *dto.SnapshotEnvelope)
	// HasSubscribers lets the consumer skip rebuilding snapshots nobody is
	// watching.
	HasSubscribers(topic string) bool
}

type IConsumerService interface {
	// Consume drains content change events and fans out fresh snapshots
	// until the context is cancelled. Run it in its own goroutine.
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub          *gochannel.GoChannel
	snapshotService ISnapshotService
	broadcaster     SnapshotBroadcaster
	logger          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	snapshotService ISnapshotService,
	broadcaster SnapshotBroadcaster,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		snapshotService: snapshotService,
		broadcaster:     broadcaster,
		logger:          logger,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, constant.ContentEventsTopic)
	if err != nil {
		return err
	}

	s.logger.Info("Consumer", "Content event consumer started", nil)
	for msg := range messages {
		var event dto.ContentChangedMessage
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			s.logger.Warn("Consumer", "Dropping malformed content event", map[string]interface{}{
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}

		for _, topic := range s.snapshotService.TopicsFor(event.Collection, event.EssaySlug) {
			if !s.broadcaster.HasSubscribers(topic) {
				continue
			}
			envelope, err := s.snapshotService.Build(ctx, topic)
			if err != nil {
				s.logger.Error("Consumer", "Failed to rebuild snapshot", map[string]interface{}{
					"topic": topic,
					"error": err.Error(),
				})
				continue
			}
			s.broadcaster.Broadcast(topic, envelope)
		}
		msg.Ack()
	}
	return nil
}
