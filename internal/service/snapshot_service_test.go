package service

import (
	"context"
	"testing"
	"time"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/entity"
	"degrondvraag-be/pkg/markdown"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func snapshotFixture() (ISnapshotService, *fakeFactory) {
	factory := newFakeFactory()
	publisher := &recordingPublisher{}
	essaySvc := NewEssayService(factory, publisher, markdown.NewRenderer())
	commentSvc := NewCommentService(factory, publisher)
	voteSvc := NewVoteService(factory, publisher)
	return NewSnapshotService(essaySvc, commentSvc, voteSvc), factory
}

func TestTopicsForMapsCollectionsToTopics(t *testing.T) {
	svc, _ := snapshotFixture()

	assert.Equal(t, []string{"essays"}, svc.TopicsFor(constant.TopicEssays, ""))
	assert.Equal(t, []string{"comments/essay"}, svc.TopicsFor(constant.TopicComments, "essay"))
	assert.Equal(t, []string{"votes/essay"}, svc.TopicsFor(constant.TopicVotes, "essay"))
	assert.Nil(t, svc.TopicsFor("onbekend", "x"))
}

func TestBuildEssaysSnapshotIsFullResultSet(t *testing.T) {
	svc, factory := snapshotFixture()
	seedEssay(factory, "een", constant.EssayStatusPublished, "2026-01-01", time.Now())
	seedEssay(factory, "twee", constant.EssayStatusDraft, "2026-02-01", time.Now())

	envelope, err := svc.Build(context.Background(), "essays")
	assert.NoError(t, err)
	assert.Equal(t, "snapshot", envelope.Type)
	assert.Equal(t, "essays", envelope.Topic)

	items := envelope.Data.([]*dto.EssayListItem)
	assert.Len(t, items, 2)
}

func TestBuildVotesSnapshotCarriesNoPersonalVote(t *testing.T) {
	svc, factory := snapshotFixture()
	uid := uuid.New()
	factory.store.votes[voteKey("essay", uid)] = &entity.Vote{
		EssaySlug: "essay", UserId: uid, Type: constant.VoteTypeLike,
	}

	envelope, err := svc.Build(context.Background(), "votes/essay")
	assert.NoError(t, err)

	tally := envelope.Data.(*dto.VoteTally)
	assert.EqualValues(t, 1, tally.Likes)
	// A broadcast reaches every subscriber; MyVote would be meaningless.
	assert.Empty(t, tally.MyVote)
}

func TestBuildUnknownTopicFails(t *testing.T) {
	svc, _ := snapshotFixture()
	_, err := svc.Build(context.Background(), "weersverwachting")
	assert.Error(t, err)
}
