package job

import (
	"Orbit/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// notificationRetention 已读通知保留时长
const notificationRetention = 30 * 24 * time.Hour

// NotificationCleanJob 每日清理过期的已读通知
type NotificationCleanJob struct {
	notificationRepo repository.NotificationRepo
}

func NewNotificationCleanJob(notificationRepo repository.NotificationRepo) *NotificationCleanJob {
	return &NotificationCleanJob{
		notificationRepo: notificationRepo,
	}
}

func (s *NotificationCleanJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().Add(-notificationRetention)

	deleted, err := s.notificationRepo.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		log.Error("通知清理任务失败", "err", err)
		return
	}
	log.Info("通知清理任务完成", "deleted", deleted)
}
