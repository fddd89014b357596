package service

import (
	"context"
	"time"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/repository/specification"
	"degrondvraag-be/internal/repository/unitofwork"
	"degrondvraag-be/pkg/markdown"
)

// Annotation shown on draft cards instead of a link.
const draftAnnotation = "Dit artikel komt binnenkort beschikbaar"

type IEssayService interface {
	// ListPublic returns every essay, drafts included but marked non-navigable.
	ListPublic(ctx context.Context) ([]*dto.EssayListItem, error)
	// Show returns one published essay with its body rendered; a missing or
	// unpublished essay is ErrNotAvailable, nothing more specific.
	Show(ctx context.Context, slug string) (*dto.ShowEssayResponse, error)

	ListAdmin(ctx context.Context) ([]*dto.AdminEssayItem, error)
	Upsert(ctx context.Context, req *dto.UpsertEssayRequest) (*dto.UpsertEssayResponse, error)
	Delete(ctx context.Context, slug string) error
}

type essayService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	renderer         *markdown.Renderer
}

func NewEssayService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, renderer *markdown.Renderer) IEssayService {
	return &essayService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		renderer:         renderer,
	}
}

func (s *essayService) ListPublic(ctx context.Context) ([]*dto.EssayListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	essays, err := uow.EssayRepository().FindAll(ctx, specification.OrderByDateDesc{})
	if err != nil {
		return nil, err
	}

	items := make([]*dto.EssayListItem, 0, len(essays))
	for _, e := range essays {
		item := &dto.EssayListItem{
			Slug:      e.Slug,
			Title:     e.Title,
			Excerpt:   e.Excerpt,
			Date:      e.Date,
			Status:    e.Status,
			Navigable: e.IsPublished(),
		}
		if !e.IsPublished() {
			item.Annotation = draftAnnotation
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *essayService) Show(ctx context.Context, slug string) (*dto.ShowEssayResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	essay, err := uow.EssayRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if essay == nil || !essay.IsPublished() {
		return nil, ErrNotAvailable
	}

	bodyHTML, err := s.renderer.ToHTML(essay.Body)
	if err != nil {
		return nil, err
	}

	return &dto.ShowEssayResponse{
		Slug:      essay.Slug,
		Title:     essay.Title,
		Excerpt:   essay.Excerpt,
		Body:      essay.Body,
		BodyHTML:  bodyHTML,
		Date:      essay.Date,
		CreatedAt: essay.CreatedAt,
		UpdatedAt: essay.UpdatedAt,
	}, nil
}

func (s *essayService) ListAdmin(ctx context.Context) ([]*dto.AdminEssayItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	essays, err := uow.EssayRepository().FindAll(ctx, specification.OrderByDateDesc{})
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminEssayItem, 0, len(essays))
	for _, e := range essays {
		items = append(items, &dto.AdminEssayItem{
			Slug:      e.Slug,
			Title:     e.Title,
			Excerpt:   e.Excerpt,
			Date:      e.Date,
			Status:    e.Status,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}
	return items, nil
}

func (s *essayService) Upsert(ctx context.Context, req *dto.UpsertEssayRequest) (*dto.UpsertEssayResponse, error) {
	status := req.Status
	if status == "" {
		status = constant.EssayStatusDraft
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	essay := &entity.Essay{
		Slug:      req.Slug,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		Date:      date,
		Status:    status,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Same slug silently overwrites: no conflict detection, no versioning.
	if err := uow.EssayRepository().Upsert(ctx, essay); err != nil {
		return nil, err
	}

	_ = s.publisherService.PublishContentChange(ctx, constant.TopicEssays, "")

	return &dto.UpsertEssayResponse{Slug: essay.Slug}, nil
}

func (s *essayService) Delete(ctx context.Context, slug string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Removes the essay only. Comments and votes stay behind, orphaned.
	if err := uow.EssayRepository().Delete(ctx, slug); err != nil {
		return err
	}

	_ = s.publisherService.PublishContentChange(ctx, constant.TopicEssays, "")
	return nil
}
