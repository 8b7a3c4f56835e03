package repository

import (
	"Orbit/internal/model"
	"context"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, tags []*model.PostTag) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpdatePost(ctx context.Context, post *model.Post, tags []*model.PostTag) error
	SetPublished(ctx context.Context, id uint64, published bool) error
	IncrementViews(ctx context.Context, slug string) error
	ListPublished(ctx context.Context) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorID uint64) ([]*model.Post, error)
	ListAll(ctx context.Context) ([]*model.Post, error)
	RelatedPosts(ctx context.Context, categoryValue string, excludeID uint64, limit int) ([]*model.Post, error)
	FeaturedPosts(ctx context.Context, limit int) ([]*model.Post, error)
	LatestPosts(ctx context.Context, limit int) ([]*model.Post, error)
	TopAuthorID(ctx context.Context) (authorID uint64, totalViews int64, err error)
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, tags []*model.PostTag) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		for _, tag := range tags {
			tag.PostID = post.ID
		}
		return tx.Create(tags).Error
	})
}

func (s PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author.Profile").
		Preload("Category").
		Preload("Tags.Tag").
		Preload("Likes").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author.Profile").
		Preload("Category").
		Preload("Tags.Tag").
		Preload("Likes").
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, tags []*model.PostTag) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Updates(post).Error; err != nil {
			return err
		}
		if tags == nil {
			return nil
		}
		if err := tx.Delete(&model.PostTag{}, "post_id = ?", post.ID).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		for _, tag := range tags {
			tag.PostID = post.ID
		}
		return tx.Create(tags).Error
	})
}

func (s PostRepoImpl) SetPublished(ctx context.Context, id uint64, published bool) error {
	updates := map[string]interface{}{"published": published}
	if published {
		updates["published_at"] = gorm.Expr("NOW()")
	}
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(updates).Error
}

func (s PostRepoImpl) IncrementViews(ctx context.Context, slug string) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("slug = ?", slug).
		Update("views", gorm.Expr("views + 1")).Error
}

func (s PostRepoImpl) ListPublished(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author.Profile").
		Preload("Category").
		Preload("Tags.Tag").
		Preload("Likes").
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) ListByAuthor(ctx context.Context, authorID uint64) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags.Tag").
		Preload("Likes").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) ListAll(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author.Profile").
		Preload("Category").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) RelatedPosts(ctx context.Context, categoryValue string, excludeID uint64, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author.Profile").
		Preload("Category").
		Joins("JOIN categories ON categories.id = posts.category_id").
		Where("categories.value = ? AND posts.published = ? AND posts.id <> ?", categoryValue, true, excludeID).
		Order("posts.views DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) FeaturedPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author.Profile").
		Preload("Category").
		Where("published = ?", true).
		Order("views DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) LatestPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author.Profile").
		Preload("Category").
		Where("published = ?", true).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) TopAuthorID(ctx context.Context) (uint64, int64, error) {
	var row struct {
		AuthorID   uint64
		TotalViews int64
	}
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("author_id, SUM(views) AS total_views").
		Where("published = ?", true).
		Group("author_id").
		Order("total_views DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.AuthorID, row.TotalViews, nil
}

func (s PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN (?)",
			tx.Model(&model.Comment{}).Select("id").Where("post_id = ?", id),
		).Delete(&model.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Comment{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Like{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.PostTag{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}
