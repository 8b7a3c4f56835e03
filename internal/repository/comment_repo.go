package repository

import (
	"Orbit/internal/model"
	"context"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error)
	ListAll(ctx context.Context) ([]*model.Comment, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, id uint64) error
	CreateReply(ctx context.Context, reply *model.Reply) error
	GetReply(ctx context.Context, id uint64) (*model.Reply, error)
	ListRepliesByUser(ctx context.Context, userID uint64) ([]*model.Reply, error)
	DeleteReply(ctx context.Context, id uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{
		db: db,
	}
}

func (s CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("User.Profile").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s CommentRepoImpl) ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User.Profile").
		Preload("Replies.User.Profile").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s CommentRepoImpl) ListAll(ctx context.Context) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User.Profile").
		Preload("Replies.User.Profile").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s CommentRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Reply{}, "comment_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Comment{}, id).Error
	})
}

func (s CommentRepoImpl) CreateReply(ctx context.Context, reply *model.Reply) error {
	return s.db.WithContext(ctx).Create(reply).Error
}

func (s CommentRepoImpl) GetReply(ctx context.Context, id uint64) (*model.Reply, error) {
	var reply model.Reply
	err := s.db.WithContext(ctx).Preload("User.Profile").First(&reply, id).Error
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (s CommentRepoImpl) ListRepliesByUser(ctx context.Context, userID uint64) ([]*model.Reply, error) {
	var replies []*model.Reply
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (s CommentRepoImpl) DeleteReply(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Reply{}, id).Error
}
