package tag

import (
	"Recipe-API/entities"
	"Recipe-API/pkg/scope"
	"context"

	"gorm.io/gorm"
)

type (
	TagRepository interface {
		CreateTag(ctx context.Context, tag *entities.Tag) error
		GetTags(ctx context.Context, q scope.Query) ([]*entities.Tag, error)
		GetTagsByIDs(ctx context.Context, ownerID uint, ids []uint) ([]*entities.Tag, error)
	}

	tagRepository struct {
		db *gorm.DB
	}
)

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) CreateTag(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetTags(ctx context.Context, q scope.Query) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := q.Attributes(r.db.WithContext(ctx), scope.TagRelation).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) GetTagsByIDs(ctx context.Context, ownerID uint, ids []uint) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", ownerID, ids).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
