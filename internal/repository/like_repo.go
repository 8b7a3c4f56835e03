package repository

import (
	"Orbit/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LikeRepo interface {
	GetLike(ctx context.Context, userID, postID uint64) (*model.Like, error)
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID, postID uint64) error
	CountByPost(ctx context.Context, postID uint64) (int64, error)
	ListPostsLikedByUser(ctx context.Context, userID uint64) ([]*model.Post, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{
		db: db,
	}
}

func (s LikeRepoImpl) GetLike(ctx context.Context, userID, postID uint64) (*model.Like, error) {
	var like model.Like
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (s LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s LikeRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{}).Error
}

func (s LikeRepoImpl) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (s LikeRepoImpl) ListPostsLikedByUser(ctx context.Context, userID uint64) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author.Profile").
		Preload("Category").
		Joins("JOIN likes ON likes.post_id = posts.id").
		Where("likes.user_id = ? AND posts.published = ?", userID, true).
		Order("likes.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
