package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one entry in a transcript.
type ChatMessage struct {
	Role string // user | assistant | system
	Text string
}

// Transcript is the per-identity chat state. It is scoped to one essay:
// opening a session for a different essay overwrites it wholesale.
type Transcript struct {
	EssaySlug string
	History   []ChatMessage
	Busy      bool // one in-flight send per transcript, no queue
}

// ChatLog is a persisted question/answer exchange, kept for admin review as
// announced on the privacy page.
type ChatLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	EssaySlug string
	Question  string
	Answer    string
	Failed    bool
	CreatedAt time.Time
}
