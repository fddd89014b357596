package service

import (
	"context"
	"time"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/repository/specification"
	"degrondvraag-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IVoteService interface {
	// Tally derives totals by counting records; there is no aggregate column.
	Tally(ctx context.Context, essaySlug string, userId uuid.UUID) (*dto.VoteTally, error)
	// CastVote toggles: same type again removes the vote, the opposite type
	// overwrites it. At most one record per (essay, identity).
	CastVote(ctx context.Context, essaySlug string, userId uuid.UUID, voteType string) (*dto.VoteTally, error)
}

type voteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewVoteService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IVoteService {
	return &voteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *voteService) Tally(ctx context.Context, essaySlug string, userId uuid.UUID) (*dto.VoteTally, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	voteRepo := uow.VoteRepository()

	likes, err := voteRepo.Count(ctx,
		specification.ByEssaySlug{EssaySlug: essaySlug},
		specification.ByVoteType{Type: constant.VoteTypeLike},
	)
	if err != nil {
		return nil, err
	}

	dislikes, err := voteRepo.Count(ctx,
		specification.ByEssaySlug{EssaySlug: essaySlug},
		specification.ByVoteType{Type: constant.VoteTypeDislike},
	)
	if err != nil {
		return nil, err
	}

	tally := &dto.VoteTally{
		Likes:    likes,
		Dislikes: dislikes,
	}

	if userId != uuid.Nil {
		own, err := voteRepo.FindOne(ctx,
			specification.ByEssaySlug{EssaySlug: essaySlug},
			specification.ByVoter{UserId: userId},
		)
		if err != nil {
			return nil, err
		}
		if own != nil {
			tally.MyVote = own.Type
		}
	}

	return tally, nil
}

func (s *voteService) CastVote(ctx context.Context, essaySlug string, userId uuid.UUID, voteType string) (*dto.VoteTally, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	voteRepo := uow.VoteRepository()

	existing, err := voteRepo.FindOne(ctx,
		specification.ByEssaySlug{EssaySlug: essaySlug},
		specification.ByVoter{UserId: userId},
	)
	if err != nil {
		return nil, err
	}

	if existing != nil && existing.Type == voteType {
		// Toggle off
		if err := voteRepo.Delete(ctx, essaySlug, userId); err != nil {
			return nil, err
		}
	} else {
		vote := &entity.Vote{
			EssaySlug: essaySlug,
			UserId:    userId,
			Type:      voteType,
			CreatedAt: time.Now(),
		}
		if err := voteRepo.Upsert(ctx, vote); err != nil {
			return nil, err
		}
	}

	_ = s.publisherService.PublishContentChange(ctx, constant.TopicVotes, essaySlug)

	return s.Tally(ctx, essaySlug, userId)
}
