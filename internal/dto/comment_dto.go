package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Text  string `json:"text" validate:"required"`
}

type CreateCommentResponse struct {
	Id uuid.UUID `json:"id"`
}

// CommentItem never carries the author's email.
type CommentItem struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
