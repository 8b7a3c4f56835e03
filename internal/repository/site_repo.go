package repository

import (
	"Orbit/internal/model"
	"context"

	"gorm.io/gorm"
)

type SiteRepo interface {
	Create(ctx context.Context, settings *model.SiteSettings) error
	GetFirst(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, settings *model.SiteSettings) error
}

type SiteRepoImpl struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepo {
	return &SiteRepoImpl{
		db: db,
	}
}

func (s SiteRepoImpl) Create(ctx context.Context, settings *model.SiteSettings) error {
	return s.db.WithContext(ctx).Create(settings).Error
}

func (s SiteRepoImpl) GetFirst(ctx context.Context) (*model.SiteSettings, error) {
	var settings model.SiteSettings
	err := s.db.WithContext(ctx).Order("id ASC").First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s SiteRepoImpl) Update(ctx context.Context, settings *model.SiteSettings) error {
	return s.db.WithContext(ctx).Updates(settings).Error
}
