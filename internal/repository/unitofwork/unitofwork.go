package unitofwork

import (
	"context"

	"degrondvraag-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	EssayRepository() contract.EssayRepository
	CommentRepository() contract.CommentRepository
	VoteRepository() contract.VoteRepository
	UserRepository() contract.UserRepository
	ChatLogRepository() contract.ChatLogRepository
}
