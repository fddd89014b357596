package service

import (
	"context"
	"testing"
	"time"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateCommentStoresEmailButNeverReturnsIt(t *testing.T) {
	factory := newFakeFactory()
	publisher := &recordingPublisher{}
	svc := NewCommentService(factory, publisher)

	_, err := svc.Create(context.Background(), "essay", &dto.CreateCommentRequest{
		Name:  "Anna",
		Email: "anna@example.com",
		Text:  "Dit raakte me.",
	})
	assert.NoError(t, err)

	// Stored with email for the record.
	assert.Equal(t, "anna@example.com", factory.store.comments[0].Email)

	// Listed without it.
	items, err := svc.List(context.Background(), "essay")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Anna", items[0].Name)
	assert.Equal(t, "Dit raakte me.", items[0].Text)
}

func TestListCommentsNewestFirst(t *testing.T) {
	factory := newFakeFactory()
	svc := NewCommentService(factory, &recordingPublisher{})

	base := time.Now()
	for i, text := range []string{"eerste", "tweede", "derde"} {
		factory.store.comments = append(factory.store.comments, &entity.Comment{
			Id:        uuid.New(),
			ArticleId: "essay",
			Name:      "Lezer",
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	items, err := svc.List(context.Background(), "essay")
	assert.NoError(t, err)
	assert.Equal(t, "derde", items[0].Text)
	assert.Equal(t, "eerste", items[2].Text)
}

func TestCreateCommentWorksWithoutEssayRecord(t *testing.T) {
	factory := newFakeFactory()
	publisher := &recordingPublisher{}
	svc := NewCommentService(factory, publisher)

	// No essay seeded at all. Comments are keyed by article id, nothing
	// checks whether that essay exists.
	_, err := svc.Create(context.Background(), "verwijderd-essay", &dto.CreateCommentRequest{
		Name:  "Bram",
		Email: "bram@example.com",
		Text:  "Waar is het essay gebleven?",
	})
	assert.NoError(t, err)

	items, err := svc.List(context.Background(), "verwijderd-essay")
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	events := publisher.published()
	assert.Len(t, events, 1)
	assert.Equal(t, constant.TopicComments, events[0].Collection)
	assert.Equal(t, "verwijderd-essay", events[0].EssaySlug)
}
