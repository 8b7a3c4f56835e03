package service

import (
	"Orbit/internal/api/dto"
	"Orbit/internal/model"
	"Orbit/internal/pkg/consts"
	"Orbit/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"mime/multipart"

	"gorm.io/gorm"
)

type SiteService interface {
	GetSettings(ctx context.Context) (*model.SiteSettings, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateSiteSettingsDTO, logo, heroImage *multipart.FileHeader) (*model.SiteSettings, error)
}

type SiteServiceImpl struct {
	siteRepo repository.SiteRepo
}

func NewSiteService(siteRepo repository.SiteRepo) SiteService {
	return &SiteServiceImpl{
		siteRepo: siteRepo,
	}
}

func (s *SiteServiceImpl) GetSettings(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.siteRepo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, UnExpectedError
	}
	return settings, nil
}

// UpdateSettings 更新站点设置，首次调用时自动建档
func (s *SiteServiceImpl) UpdateSettings(ctx context.Context, req *dto.UpdateSiteSettingsDTO, logo, heroImage *multipart.FileHeader) (*model.SiteSettings, error) {
	settings, err := s.siteRepo.GetFirst(ctx)
	created := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, UnExpectedError
		}
		settings = &model.SiteSettings{SiteName: "Orbit Blog"}
		created = true
	}

	if req.SiteName != nil && *req.SiteName != "" {
		settings.SiteName = *req.SiteName
	}
	if req.HeroTitle != nil {
		settings.HeroTitle = *req.HeroTitle
	}
	if req.HeroDescription != nil {
		settings.HeroDescription = *req.HeroDescription
	}
	if req.AccentColor != nil {
		settings.AccentColor = *req.AccentColor
	}
	if req.GradientStart != nil {
		settings.GradientStart = *req.GradientStart
	}
	if req.GradientEnd != nil {
		settings.GradientEnd = *req.GradientEnd
	}

	if logo != nil {
		url, object, err := uploadImage(ctx, consts.FolderSite, logo)
		if err != nil {
			return nil, err
		}
		destroyImage(ctx, settings.LogoObject)
		settings.LogoURL = &url
		settings.LogoObject = &object
	}
	if heroImage != nil {
		url, object, err := uploadImage(ctx, consts.FolderSite, heroImage)
		if err != nil {
			return nil, err
		}
		destroyImage(ctx, settings.HeroImageObject)
		settings.HeroImageURL = &url
		settings.HeroImageObject = &object
	}

	if created {
		err = s.siteRepo.Create(ctx, settings)
	} else {
		err = s.siteRepo.Update(ctx, settings)
	}
	if err != nil {
		log.ErrorContext(ctx, "站点设置保存失败", "err", err)
		return nil, UnExpectedError
	}
	return settings, nil
}
