package repository

import (
	"Orbit/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User, profile *model.Profile) error
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetAuthorWithPosts(ctx context.Context, id uint64) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	UpdateProfile(ctx context.Context, profile *model.Profile) error
	UpdatePassword(ctx context.Context, id uint64, hashed string) error
	SetResetToken(ctx context.Context, id uint64, hashedToken string, expire time.Time) error
	GetUserByResetToken(ctx context.Context, hashedToken string, now time.Time) (*model.User, error)
	ClearResetToken(ctx context.Context, id uint64) error
	UpdateRole(ctx context.Context, id uint64, role string) error
	ListUsers(ctx context.Context) ([]*model.User, error)
	CountUserContent(ctx context.Context, id uint64) (posts, comments, replies, likes int64, err error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepo {
	return &UserRepoImpl{
		db: db,
	}
}

func (s UserRepoImpl) CreateUser(ctx context.Context, user *model.User, profile *model.Profile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (s UserRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Preload("Profile").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Preload("Profile").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) GetAuthorWithPosts(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Preload("Profile").
		Preload("Posts", "published = ?", true).
		Preload("Posts.Category").
		Preload("Posts.Likes").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Updates(user).Error
}

func (s UserRepoImpl) UpdateProfile(ctx context.Context, profile *model.Profile) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", profile.UserID).
		Assign(profile).
		FirstOrCreate(&model.Profile{}).Error
}

func (s UserRepoImpl) UpdatePassword(ctx context.Context, id uint64, hashed string) error {
	return s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("password", hashed).Error
}

func (s UserRepoImpl) SetResetToken(ctx context.Context, id uint64, hashedToken string, expire time.Time) error {
	return s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_password_token":  hashedToken,
		"reset_password_expire": expire,
	}).Error
}

func (s UserRepoImpl) GetUserByResetToken(ctx context.Context, hashedToken string, now time.Time) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("reset_password_token = ? AND reset_password_expire > ?", hashedToken, now).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) ClearResetToken(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_password_token":  nil,
		"reset_password_expire": nil,
	}).Error
}

func (s UserRepoImpl) UpdateRole(ctx context.Context, id uint64, role string) error {
	return s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("role", role).Error
}

func (s UserRepoImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := s.db.WithContext(ctx).Preload("Profile").Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s UserRepoImpl) CountUserContent(ctx context.Context, id uint64) (posts, comments, replies, likes int64, err error) {
	db := s.db.WithContext(ctx)
	if err = db.Model(&model.Post{}).Where("author_id = ?", id).Count(&posts).Error; err != nil {
		return
	}
	if err = db.Model(&model.Comment{}).Where("user_id = ?", id).Count(&comments).Error; err != nil {
		return
	}
	if err = db.Model(&model.Reply{}).Where("user_id = ?", id).Count(&replies).Error; err != nil {
		return
	}
	err = db.Model(&model.Like{}).Where("user_id = ?", id).Count(&likes).Error
	return
}

// DeleteUser 删除用户及其全部互动记录；用户名下的帖子由调用方先行级联清理
func (s UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Reply{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		// 他人挂在该用户评论下的回复一并清理
		commentIDs := tx.Model(&model.Comment{}).Select("id").Where("user_id = ?", id)
		if err := tx.Delete(&model.Reply{}, "comment_id IN (?)", commentIDs).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Comment{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Profile{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Like{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Notification{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}
