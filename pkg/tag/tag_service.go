package tag

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/pkg/scope"
	"context"
	"strings"
)

type (
	TagService interface {
		List(ctx context.Context, q scope.Query) ([]domain.TagResponse, error)
		Create(ctx context.Context, ownerID uint, req domain.TagRequest) (domain.TagResponse, error)
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func (s *tagService) List(ctx context.Context, q scope.Query) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.GetTags(ctx, q)
	if err != nil {
		return nil, err
	}

	res := make([]domain.TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, domain.TagResponse{ID: t.ID, Name: t.Name})
	}
	return res, nil
}

func (s *tagService) Create(ctx context.Context, ownerID uint, req domain.TagRequest) (domain.TagResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.TagResponse{}, domain.NewValidationError("name", "this field may not be blank")
	}

	t := &entities.Tag{UserID: ownerID, Name: name}
	if err := s.tagRepository.CreateTag(ctx, t); err != nil {
		return domain.TagResponse{}, err
	}
	return domain.TagResponse{ID: t.ID, Name: t.Name}, nil
}
