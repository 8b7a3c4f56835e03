package service

import (
	"Orbit/internal/api/dto"
	"Orbit/internal/model"
	"Orbit/internal/pkg/util"
	"Orbit/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const (
	relatedPostLimit  = 3
	featuredPostLimit = 3
	latestPostLimit   = 10
	popularTagLimit   = 20
)

type FeatureService interface {
	RelatedPosts(ctx context.Context, req *dto.RelatedPostDTO) ([]*model.Post, error)
	FeaturedPosts(ctx context.Context) ([]*model.Post, error)
	LatestPosts(ctx context.Context) ([]*model.Post, error)
	PopularTags(ctx context.Context) ([]*dto.TagCountDTO, error)
	FeaturedAuthor(ctx context.Context) (*dto.FeaturedAuthorDTO, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryCountDTO, error)
	ListTags(ctx context.Context) ([]*dto.TagCountDTO, error)
	EditCategory(ctx context.Context, req *dto.EditCategoryDTO) error
	EditTag(ctx context.Context, req *dto.EditTagDTO) error
}

type FeatureServiceImpl struct {
	postRepo     repository.PostRepo
	taxonomyRepo repository.TaxonomyRepo
	userRepo     repository.UserRepo
}

func NewFeatureService(postRepo repository.PostRepo, taxonomyRepo repository.TaxonomyRepo, userRepo repository.UserRepo) FeatureService {
	return &FeatureServiceImpl{
		postRepo:     postRepo,
		taxonomyRepo: taxonomyRepo,
		userRepo:     userRepo,
	}
}

func (s *FeatureServiceImpl) RelatedPosts(ctx context.Context, req *dto.RelatedPostDTO) ([]*model.Post, error) {
	posts, err := s.postRepo.RelatedPosts(ctx, req.Value, req.CurrentID, relatedPostLimit)
	if err != nil {
		return nil, UnExpectedError
	}
	return posts, nil
}

func (s *FeatureServiceImpl) FeaturedPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.FeaturedPosts(ctx, featuredPostLimit)
	if err != nil {
		return nil, UnExpectedError
	}
	return posts, nil
}

func (s *FeatureServiceImpl) LatestPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.LatestPosts(ctx, latestPostLimit)
	if err != nil {
		return nil, UnExpectedError
	}
	return posts, nil
}

func (s *FeatureServiceImpl) PopularTags(ctx context.Context) ([]*dto.TagCountDTO, error) {
	rows, err := s.taxonomyRepo.PopularTags(ctx, popularTagLimit)
	if err != nil {
		return nil, UnExpectedError
	}
	var tags []*dto.TagCountDTO
	if err = copier.Copy(&tags, rows); err != nil {
		return nil, UnExpectedError
	}
	return tags, nil
}

// FeaturedAuthor 全站累计浏览量最高的作者
func (s *FeatureServiceImpl) FeaturedAuthor(ctx context.Context) (*dto.FeaturedAuthorDTO, error) {
	authorID, totalViews, err := s.postRepo.TopAuthorID(ctx)
	if err != nil {
		log.ErrorContext(ctx, "头部作者查询失败", "err", err)
		return nil, UnExpectedError
	}
	if authorID == 0 {
		return nil, ErrUserNotFound
	}

	author, err := s.userRepo.GetAuthorWithPosts(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, UnExpectedError
	}

	return &dto.FeaturedAuthorDTO{
		Author:     author,
		TotalViews: totalViews,
		PostCount:  int64(len(author.Posts)),
	}, nil
}

func (s *FeatureServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryCountDTO, error) {
	rows, err := s.taxonomyRepo.ListCategoriesWithCount(ctx)
	if err != nil {
		return nil, UnExpectedError
	}
	var categories []*dto.CategoryCountDTO
	if err = copier.Copy(&categories, rows); err != nil {
		return nil, UnExpectedError
	}
	return categories, nil
}

func (s *FeatureServiceImpl) ListTags(ctx context.Context) ([]*dto.TagCountDTO, error) {
	rows, err := s.taxonomyRepo.ListTagsWithCount(ctx)
	if err != nil {
		return nil, UnExpectedError
	}
	var tags []*dto.TagCountDTO
	if err = copier.Copy(&tags, rows); err != nil {
		return nil, UnExpectedError
	}
	return tags, nil
}

func (s *FeatureServiceImpl) EditCategory(ctx context.Context, req *dto.EditCategoryDTO) error {
	if err := s.taxonomyRepo.UpdateCategory(ctx, req.ID, req.Label, util.Slugify(req.Label)); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *FeatureServiceImpl) EditTag(ctx context.Context, req *dto.EditTagDTO) error {
	if err := s.taxonomyRepo.UpdateTag(ctx, req.ID, req.Label, util.Slugify(req.Label)); err != nil {
		return UnExpectedError
	}
	return nil
}