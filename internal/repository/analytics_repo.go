package repository

import (
	"Orbit/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// AnalyticsRepo 聚合报表的数据读取接口，authorID 为 0 表示不按作者过滤
type AnalyticsRepo interface {
	PostsInRange(ctx context.Context, authorID uint64, from, to time.Time) ([]*model.Post, error)
	PostsForChart(ctx context.Context, from, to time.Time) ([]*model.Post, error)
	CommentsOnAuthorPosts(ctx context.Context, authorID uint64, from, to time.Time) ([]*model.Comment, error)
	LikesInRange(ctx context.Context, authorID uint64, from, to time.Time) ([]*model.Like, error)
	UsersInRange(ctx context.Context, from, to time.Time) ([]*model.User, error)
	PostsWithEngagement(ctx context.Context, from time.Time) ([]*model.Post, error)
	AllUsers(ctx context.Context) ([]*model.User, error)
	CountUsers(ctx context.Context) (int64, error)
	CountUsersCreatedSince(ctx context.Context, since time.Time) (int64, error)
	CountAuthors(ctx context.Context) (int64, error)
}

type AnalyticsRepoImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepo {
	return &AnalyticsRepoImpl{
		db: db,
	}
}

// PostsInRange 按创建时间取窗口内的帖子，浏览量降序
func (s AnalyticsRepoImpl) PostsInRange(ctx context.Context, authorID uint64, from, to time.Time) ([]*model.Post, error) {
	var posts []*model.Post
	query := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Likes").
		Preload("Comments").
		Where("created_at >= ? AND created_at <= ?", from, to)
	if authorID != 0 {
		query = query.Where("author_id = ?", authorID)
	}
	err := query.Order("views DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// PostsForChart 按创建时间取窗口内的帖子，创建时间升序
func (s AnalyticsRepoImpl) PostsForChart(ctx context.Context, from, to time.Time) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CommentsOnAuthorPosts 取窗口内落在指定作者帖子上的评论
func (s AnalyticsRepoImpl) CommentsOnAuthorPosts(ctx context.Context, authorID uint64, from, to time.Time) ([]*model.Comment, error) {
	var comments []*model.Comment
	query := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comments.created_at >= ? AND comments.created_at <= ?", from, to)
	if authorID != 0 {
		query = query.
			Joins("JOIN posts ON posts.id = comments.post_id").
			Where("posts.author_id = ?", authorID)
	}
	err := query.Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// LikesInRange 取窗口内的点赞，authorID 非 0 时只统计其帖子收到的赞
func (s AnalyticsRepoImpl) LikesInRange(ctx context.Context, authorID uint64, from, to time.Time) ([]*model.Like, error) {
	var likes []*model.Like
	query := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("likes.created_at >= ? AND likes.created_at <= ?", from, to)
	if authorID != 0 {
		query = query.
			Joins("JOIN posts ON posts.id = likes.post_id").
			Where("posts.author_id = ?", authorID)
	}
	err := query.Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

func (s AnalyticsRepoImpl) UsersInRange(ctx context.Context, from, to time.Time) ([]*model.User, error) {
	var users []*model.User
	err := s.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// PostsWithEngagement 取 from 之后创建的帖子及其全部互动，from 为零值时不过滤
func (s AnalyticsRepoImpl) PostsWithEngagement(ctx context.Context, from time.Time) ([]*model.Post, error) {
	var posts []*model.Post
	query := s.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments.Replies")
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	err := query.Order("created_at ASC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s AnalyticsRepoImpl) AllUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := s.db.WithContext(ctx).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s AnalyticsRepoImpl) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (s AnalyticsRepoImpl) CountUsersCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

// CountAuthors 统计至少发过一篇帖子的用户数
func (s AnalyticsRepoImpl) CountAuthors(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("EXISTS (SELECT 1 FROM posts WHERE posts.author_id = users.id)").
		Count(&count).Error
	return count, err
}
