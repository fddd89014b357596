package dto

// ContentChangedMessage travels over the internal event bus whenever an
// essay, comment or vote is written. EssaySlug is empty for collection-wide
// changes (the essays listing).
type ContentChangedMessage struct {
	Collection string `json:"collection"` // essays | comments | votes
	EssaySlug  string `json:"essay_slug,omitempty"`
}

// SnapshotEnvelope is what subscribers receive on every change: the topic and
// the full current result set, never a delta.
type SnapshotEnvelope struct {
	Type  string      `json:"type"` // always "snapshot"
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}
