package dto

import (
	"Orbit/internal/model"
	"time"
)

type CreatePostDTO struct {
	Title           string   `form:"title" validate:"required,max=255"`
	Description     string   `form:"description" validate:"max=500"`
	Content         string   `form:"content" validate:"required"`
	Category        string   `form:"category" validate:"required,max=100"`
	Tags            []string `form:"tags"`
	Published       bool     `form:"published"`
	MetaTitle       string   `form:"metaTitle" validate:"max=255"`
	MetaDescription string   `form:"metaDescription" validate:"max=500"`
}

type UpdatePostDTO struct {
	Title           *string  `form:"title"`
	Description     *string  `form:"description"`
	Content         *string  `form:"content"`
	Category        *string  `form:"category"`
	Tags            []string `form:"tags"`
	MetaTitle       *string  `form:"metaTitle"`
	MetaDescription *string  `form:"metaDescription"`
}

type UnpublishPostDTO struct {
	PostID uint64 `json:"postId" validate:"required"`
	Reason string `json:"reason" validate:"required,max=500"`
}

type CommentDTO struct {
	Comment string `json:"comment" validate:"required,max=1000"`
}

type ReplyDTO struct {
	CommentID uint64 `json:"commentId" validate:"required"`
	Reply     string `json:"reply" validate:"required,max=1000"`
}

type LikeDTO struct {
	PostID uint64 `json:"postId" validate:"required"`
}

type RelatedPostDTO struct {
	Value     string `json:"value" validate:"required"`
	CurrentID uint64 `json:"currentId"`
}

type EditCategoryDTO struct {
	ID    uint64 `json:"id" validate:"required"`
	Label string `json:"label" validate:"required,max=100"`
}

type EditTagDTO struct {
	ID    uint64 `json:"id" validate:"required"`
	Label string `json:"label" validate:"required,max=100"`
}

// LikeResultDTO 点赞切换后的状态
type LikeResultDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// CategoryCountDTO 分类及其帖子数
type CategoryCountDTO struct {
	ID    uint64 `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// TagCountDTO 标签及其帖子数
type TagCountDTO struct {
	ID    uint64 `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// FeaturedAuthorDTO 浏览量最高的作者
type FeaturedAuthorDTO struct {
	Author     *model.User `json:"author"`
	TotalViews int64       `json:"totalViews"`
	PostCount  int64       `json:"postCount"`
}

// ActivityDTO 作者的近期动态行
type ActivityDTO struct {
	Type      string    `json:"type"`
	PostID    uint64    `json:"postId"`
	PostTitle string    `json:"postTitle"`
	Actor     string    `json:"actor"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
