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

type ICommentService interface {
	// List returns an essay's comments newest first. Works for orphaned
	// comments too: no essay lookup happens here.
	List(ctx context.Context, articleId string) ([]*dto.CommentItem, error)
	Create(ctx context.Context, articleId string, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error)
}

type commentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewCommentService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) ICommentService {
	return &commentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *commentService) List(ctx context.Context, articleId string) ([]*dto.CommentItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByArticleId{ArticleId: articleId},
		specification.OrderByCreatedAtDesc{},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommentItem, 0, len(comments))
	for _, c := range comments {
		// Email stays out of every response shape.
		items = append(items, &dto.CommentItem{
			Id:        c.Id,
			Name:      c.Name,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}
	return items, nil
}

func (s *commentService) Create(ctx context.Context, articleId string, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	comment := &entity.Comment{
		Id:        uuid.New(),
		ArticleId: articleId,
		Name:      req.Name,
		Email:     req.Email,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CommentRepository().Create(ctx, comment); err != nil {
		return nil, err
	}

	_ = s.publisherService.PublishContentChange(ctx, constant.TopicComments, articleId)

	return &dto.CreateCommentResponse{Id: comment.Id}, nil
}
