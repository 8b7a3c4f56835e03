package service

import (
	"Orbit/internal/model"
	"Orbit/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type NotificationService interface {
	List(ctx context.Context) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context) error
}

type NotificationServiceImpl struct {
	notificationRepo repository.NotificationRepo
}

func NewNotificationService(notificationRepo repository.NotificationRepo) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
	}
}

func (s *NotificationServiceImpl) List(ctx context.Context) ([]*model.Notification, error) {
	notifications, err := s.notificationRepo.ListAll(ctx)
	if err != nil {
		return nil, UnExpectedError
	}
	return notifications, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id uint64) error {
	if _, err := s.notificationRepo.Get(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return UnExpectedError
	}
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context) error {
	if err := s.notificationRepo.MarkAllRead(ctx); err != nil {
		return UnExpectedError
	}
	return nil
}
