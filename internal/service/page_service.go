package service

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"degrondvraag-be/internal/dto"
	"degrondvraag-be/pkg/markdown"
)

//go:embed pages/*.md
var pageFS embed.FS

// pageTitles doubles as the whitelist of servable slugs.
var pageTitles = map[string]string{
	"home":    "De Grondvraag",
	"over":    "Over dit project",
	"roadmap": "Roadmap",
	"privacy": "Privacy",
}

type IPageService interface {
	Show(ctx context.Context, slug string) (*dto.PageResponse, error)
	List(ctx context.Context) ([]*dto.PageResponse, error)
}

// pageService serves the static site pages from content compiled into the
// binary. Rendering happens once per slug and is cached for the process
// lifetime since the content cannot change without a redeploy.
type pageService struct {
	renderer *markdown.Renderer

	mu       sync.Mutex
	rendered map[string]*dto.PageResponse
}

func NewPageService(renderer *markdown.Renderer) IPageService {
	return &pageService{
		renderer: renderer,
		rendered: make(map[string]*dto.PageResponse),
	}
}

func (s *pageService) Show(ctx context.Context, slug string) (*dto.PageResponse, error) {
	title, ok := pageTitles[slug]
	if !ok {
		return nil, ErrPageNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if page, ok := s.rendered[slug]; ok {
		return page, nil
	}

	source, err := pageFS.ReadFile(fmt.Sprintf("pages/%s.md", slug))
	if err != nil {
		return nil, ErrPageNotFound
	}
	html, err := s.renderer.ToHTML(string(source))
	if err != nil {
		return nil, err
	}

	page := &dto.PageResponse{Slug: slug, Title: title, HTML: html}
	s.rendered[slug] = page
	return page, nil
}

func (s *pageService) List(ctx context.Context) ([]*dto.PageResponse, error) {
	slugs := []string{"home", "over", "roadmap", "privacy"}
	pages := make([]*dto.PageResponse, 0, len(slugs))
	for _, slug := range slugs {
		page, err := s.Show(ctx, slug)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
