package memory

import (
	"time"

	"degrondvraag-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// TranscriptRepository is the server-side stand-in for the widget's local
// storage: one transcript per identity under a fixed key, overwritten whenever
// the stored essay no longer matches. Transcripts are ephemeral by design.
type TranscriptRepository struct {
	cache *cache.Cache
}

func NewTranscriptRepository() *TranscriptRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &TranscriptRepository{
		cache: c,
	}
}

func (r *TranscriptRepository) Save(identityId string, transcript *entity.Transcript) {
	r.cache.Set(identityId, transcript, cache.DefaultExpiration)
}

func (r *TranscriptRepository) Get(identityId string) (*entity.Transcript, bool) {
	if x, found := r.cache.Get(identityId); found {
		return x.(*entity.Transcript), true
	}
	return nil, false
}

func (r *TranscriptRepository) Delete(identityId string) {
	r.cache.Delete(identityId)
}
