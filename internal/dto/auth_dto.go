package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	UserId uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	Token  string    `json:"token"`
}
