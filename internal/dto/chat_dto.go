package dto

import (
	"time"

	"github.com/google/uuid"
)

// RelayChatRequest is the stateless wire contract of the chat endpoint: the
// question, the full essay body and the transcript so far. Field names are
// Dutch on the wire, matching the site.
type RelayChatRequest struct {
	Vraag   string         `json:"vraag" validate:"required"`
	Essay   string         `json:"essay" validate:"required"`
	History []RelayMessage `json:"history"`
}

type RelayMessage struct {
	Role    string `json:"role"` // user | assistant | system
	Content string `json:"content"`
}

type RelayChatResponse struct {
	Antwoord string `json:"antwoord"`
}

// Session-based widget API.

type TranscriptMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type TranscriptResponse struct {
	EssaySlug string              `json:"essay_slug"`
	History   []TranscriptMessage `json:"history"`
	Busy      bool                `json:"busy"`
}

type SendChatRequest struct {
	Vraag string `json:"vraag" validate:"required"`
}

type SendChatResponse struct {
	Antwoord string              `json:"antwoord"`
	History  []TranscriptMessage `json:"history"`
}

// Admin review of stored conversations.
type ChatLogItem struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	EssaySlug string    `json:"essay_slug"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Failed    bool      `json:"failed"`
	CreatedAt time.Time `json:"created_at"`
}
