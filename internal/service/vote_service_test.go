package service

import (
	"context"
	"testing"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCastVoteTogglesOffOnRepeat(t *testing.T) {
	factory := newFakeFactory()
	svc := NewVoteService(factory, &recordingPublisher{})
	userId := uuid.New()

	tally, err := svc.CastVote(context.Background(), "essay", userId, constant.VoteTypeLike)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, tally.Likes)
	assert.Equal(t, constant.VoteTypeLike, tally.MyVote)

	// Same vote again removes it.
	tally, err = svc.CastVote(context.Background(), "essay", userId, constant.VoteTypeLike)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, tally.Likes)
	assert.Empty(t, tally.MyVote)
}

func TestCastVoteOppositeTypeReplaces(t *testing.T) {
	factory := newFakeFactory()
	svc := NewVoteService(factory, &recordingPublisher{})
	userId := uuid.New()

	_, err := svc.CastVote(context.Background(), "essay", userId, constant.VoteTypeLike)
	assert.NoError(t, err)

	tally, err := svc.CastVote(context.Background(), "essay", userId, constant.VoteTypeDislike)
	assert.NoError(t, err)

	// Replaced, not added: still one record for this identity.
	assert.EqualValues(t, 0, tally.Likes)
	assert.EqualValues(t, 1, tally.Dislikes)
	assert.Equal(t, constant.VoteTypeDislike, tally.MyVote)
	assert.Len(t, factory.store.votes, 1)
}

func TestTallyCountsAcrossIdentities(t *testing.T) {
	factory := newFakeFactory()
	svc := NewVoteService(factory, &recordingPublisher{})

	for i := 0; i < 3; i++ {
		uid := uuid.New()
		factory.store.votes[voteKey("essay", uid)] = &entity.Vote{
			EssaySlug: "essay", UserId: uid, Type: constant.VoteTypeLike,
		}
	}
	dislikeUser := uuid.New()
	factory.store.votes[voteKey("essay", dislikeUser)] = &entity.Vote{
		EssaySlug: "essay", UserId: dislikeUser, Type: constant.VoteTypeDislike,
	}

	tally, err := svc.Tally(context.Background(), "essay", dislikeUser)
	assert.NoError(t, err)
	assert.EqualValues(t, 3, tally.Likes)
	assert.EqualValues(t, 1, tally.Dislikes)
	assert.Equal(t, constant.VoteTypeDislike, tally.MyVote)
}

func TestTallyWithoutIdentityOmitsMyVote(t *testing.T) {
	factory := newFakeFactory()
	svc := NewVoteService(factory, &recordingPublisher{})

	uid := uuid.New()
	factory.store.votes[voteKey("essay", uid)] = &entity.Vote{
		EssaySlug: "essay", UserId: uid, Type: constant.VoteTypeLike,
	}

	tally, err := svc.Tally(context.Background(), "essay", uuid.Nil)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, tally.Likes)
	assert.Empty(t, tally.MyVote)
}

func TestCastVotePublishesVoteEvent(t *testing.T) {
	factory := newFakeFactory()
	publisher := &recordingPublisher{}
	svc := NewVoteService(factory, publisher)

	_, err := svc.CastVote(context.Background(), "essay", uuid.New(), constant.VoteTypeLike)
	assert.NoError(t, err)

	events := publisher.published()
	assert.Len(t, events, 1)
	assert.Equal(t, constant.TopicVotes, events[0].Collection)
	assert.Equal(t, "essay", events[0].EssaySlug)
}
