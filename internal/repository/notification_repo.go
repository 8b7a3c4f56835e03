package repository

import (
	"Orbit/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(ctx context.Context, notification *model.Notification) error
	Get(ctx context.Context, id uint64) (*model.Notification, error)
	ListAll(ctx context.Context) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context) error
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type NotificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepo {
	return &NotificationRepoImpl{
		db: db,
	}
}

func (s NotificationRepoImpl) Create(ctx context.Context, notification *model.Notification) error {
	return s.db.WithContext(ctx).Create(notification).Error
}

func (s NotificationRepoImpl) Get(ctx context.Context, id uint64) (*model.Notification, error) {
	var notification model.Notification
	err := s.db.WithContext(ctx).First(&notification, id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (s NotificationRepoImpl) ListAll(ctx context.Context) ([]*model.Notification, error) {
	var notifications []*model.Notification
	err := s.db.WithContext(ctx).
		Preload("User.Profile").
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s NotificationRepoImpl) MarkRead(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

func (s NotificationRepoImpl) MarkAllRead(ctx context.Context) error {
	return s.db.WithContext(ctx).Model(&model.Notification{}).Where("is_read = ?", false).Update("is_read", true).Error
}

func (s NotificationRepoImpl) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("is_read = ? AND updated_at < ?", true, cutoff).
		Delete(&model.Notification{})
	return result.RowsAffected, result.Error
}
