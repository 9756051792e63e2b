package service

import (
	"context"

	"github.com/DevGleb/RealWorldApp/internal/repository"
)

// TagService exposes the global tag listing.
type TagService struct {
	tags repository.TagRepository
}

// NewTagService creates a new TagService.
func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

// List returns every tag name ever used, alphabetically.
func (s *TagService) List(ctx context.Context) ([]string, error) {
	return s.tags.ListAllDistinct(ctx)
}
