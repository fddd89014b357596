package service

import (
	"context"
	"fmt"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/dto"

	"github.com/google/uuid"
)

type ISnapshotService interface {
	// Build returns the full current result set for a subscription topic.
	// Topics are "essays", "comments/{slug}" and "votes/{slug}". Always a
	// complete snapshot, never a delta.
	Build(ctx context.Context, topic string) (*dto.SnapshotEnvelope, error)
	// TopicsFor lists the topics invalidated by a change to a collection.
	TopicsFor(collection, essaySlug string) []string
}

type snapshotService struct {
	essayService   IEssayService
	commentService ICommentService
	voteService    IVoteService
}

func NewSnapshotService(essayService IEssayService, commentService ICommentService, voteService IVoteService) ISnapshotService {
	return &snapshotService{
		essayService:   essayService,
		commentService: commentService,
		voteService:    voteService,
	}
}

// splitTopic separates "comments/rook-en-spiegels" into collection and slug.
func splitTopic(topic string) (collection, slug string) {
	for i := 0; i < len(topic); i++ {
		if topic[i] == '/' {
			return topic[:i], topic[i+1:]
		}
	}
	return topic, ""
}

func (s *snapshotService) Build(ctx context.Context, topic string) (*dto.SnapshotEnvelope, error) {
	collection, slug := splitTopic(topic)

	var data interface{}
	var err error
	switch collection {
	case constant.TopicEssays:
		data, err = s.essayService.ListPublic(ctx)
	case constant.TopicComments:
		data, err = s.commentService.List(ctx, slug)
	case constant.TopicVotes:
		// Broadcast tallies carry no personal vote; MyVote is per-identity
		// and only meaningful on the REST endpoint.
		data, err = s.voteService.Tally(ctx, slug, uuid.Nil)
	default:
		return nil, fmt.Errorf("unknown snapshot topic: %s", topic)
	}
	if err != nil {
		return nil, err
	}

	return &dto.SnapshotEnvelope{
		Type:  "snapshot",
		Topic: topic,
		Data:  data,
	}, nil
}

func (s *snapshotService) TopicsFor(collection, essaySlug string) []string {
	switch collection {
	case constant.TopicEssays:
		return []string{constant.TopicEssays}
	case constant.TopicComments:
		return []string{fmt.Sprintf("%s/%s", constant.TopicComments, essaySlug)}
	case constant.TopicVotes:
		return []string{fmt.Sprintf("%s/%s", constant.TopicVotes, essaySlug)}
	}
	return nil
}
