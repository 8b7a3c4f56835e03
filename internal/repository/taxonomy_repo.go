package repository

import (
	"Orbit/internal/model"
	"context"

	"gorm.io/gorm"
)

// CategoryCountRow 分类与其帖子数
type CategoryCountRow struct {
	ID    uint64
	Label string
	Value string
	Count int64
}

// TagCountRow 标签与其帖子数
type TagCountRow struct {
	ID    uint64
	Label string
	Value string
	Count int64
}

type TaxonomyRepo interface {
	UpsertCategory(ctx context.Context, label, value string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint64, label, value string) error
	ListCategoriesWithCount(ctx context.Context) ([]*CategoryCountRow, error)
	UpsertTag(ctx context.Context, label, value string) (*model.Tag, error)
	UpdateTag(ctx context.Context, id uint64, label, value string) error
	ListTagsWithCount(ctx context.Context) ([]*TagCountRow, error)
	PopularTags(ctx context.Context, limit int) ([]*TagCountRow, error)
}

type TaxonomyRepoImpl struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepo {
	return &TaxonomyRepoImpl{
		db: db,
	}
}

func (s TaxonomyRepoImpl) UpsertCategory(ctx context.Context, label, value string) (*model.Category, error) {
	var category model.Category
	err := s.db.WithContext(ctx).
		Where("value = ?", value).
		Attrs(model.Category{Label: label, Value: value}).
		FirstOrCreate(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s TaxonomyRepoImpl) UpdateCategory(ctx context.Context, id uint64, label, value string) error {
	return s.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Updates(map[string]interface{}{
		"label": label,
		"value": value,
	}).Error
}

func (s TaxonomyRepoImpl) ListCategoriesWithCount(ctx context.Context) ([]*CategoryCountRow, error) {
	var rows []*CategoryCountRow
	err := s.db.WithContext(ctx).Model(&model.Category{}).
		Select("categories.id, categories.label, categories.value, COUNT(posts.id) AS count").
		Joins("LEFT JOIN posts ON posts.category_id = categories.id AND posts.published = 1").
		Group("categories.id, categories.label, categories.value").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s TaxonomyRepoImpl) UpsertTag(ctx context.Context, label, value string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).
		Where("value = ?", value).
		Attrs(model.Tag{Label: label, Value: value}).
		FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s TaxonomyRepoImpl) UpdateTag(ctx context.Context, id uint64, label, value string) error {
	return s.db.WithContext(ctx).Model(&model.Tag{}).Where("id = ?", id).Updates(map[string]interface{}{
		"label": label,
		"value": value,
	}).Error
}

func (s TaxonomyRepoImpl) ListTagsWithCount(ctx context.Context) ([]*TagCountRow, error) {
	var rows []*TagCountRow
	err := s.db.WithContext(ctx).Model(&model.Tag{}).
		Select("tags.id, tags.label, tags.value, COUNT(post_tags.post_id) AS count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Group("tags.id, tags.label, tags.value").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s TaxonomyRepoImpl) PopularTags(ctx context.Context, limit int) ([]*TagCountRow, error) {
	var rows []*TagCountRow
	err := s.db.WithContext(ctx).Model(&model.Tag{}).
		Select("tags.id, tags.label, tags.value, COUNT(post_tags.post_id) AS count").
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Joins("JOIN posts ON posts.id = post_tags.post_id AND posts.published = 1").
		Group("tags.id, tags.label, tags.value").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
