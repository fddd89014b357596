package memory

import (
	"testing"

	"degrondvraag-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptRoundTrip(t *testing.T) {
	repo := NewTranscriptRepository()

	transcript := &entity.Transcript{
		EssaySlug: "essay",
		History: []entity.ChatMessage{
			{Role: "assistant", Text: "Welkom terug."},
		},
	}
	repo.Save("identity-1", transcript)

	got, found := repo.Get("identity-1")
	assert.True(t, found)
	assert.Equal(t, "essay", got.EssaySlug)
	assert.Len(t, got.History, 1)
}

func TestTranscriptMissingIdentity(t *testing.T) {
	repo := NewTranscriptRepository()

	_, found := repo.Get("onbekend")
	assert.False(t, found)
}

func TestTranscriptDelete(t *testing.T) {
	repo := NewTranscriptRepository()
	repo.Save("identity-1", &entity.Transcript{EssaySlug: "essay"})

	repo.Delete("identity-1")

	_, found := repo.Get("identity-1")
	assert.False(t, found)
}

func TestTranscriptOverwriteReplacesWholesale(t *testing.T) {
	repo := NewTranscriptRepository()
	repo.Save("identity-1", &entity.Transcript{
		EssaySlug: "eerste",
		History:   []entity.ChatMessage{{Role: "user", Text: "a"}, {Role: "assistant", Text: "b"}},
	})

	repo.Save("identity-1", &entity.Transcript{EssaySlug: "tweede"})

	got, found := repo.Get("identity-1")
	assert.True(t, found)
	assert.Equal(t, "tweede", got.EssaySlug)
	assert.Empty(t, got.History)
}
