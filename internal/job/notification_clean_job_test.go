package job

import (
	"Orbit/internal/model"
	"context"
	"testing"
	"time"
)

type fakeNotificationRepo struct {
	cutoff  time.Time
	deleted int64
}

func (f *fakeNotificationRepo) Create(_ context.Context, _ *model.Notification) error { return nil }
func (f *fakeNotificationRepo) Get(_ context.Context, _ uint64) (*model.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationRepo) ListAll(_ context.Context) ([]*model.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationRepo) MarkRead(_ context.Context, _ uint64) error  { return nil }
func (f *fakeNotificationRepo) MarkAllRead(_ context.Context) error         { return nil }
func (f *fakeNotificationRepo) DeleteReadBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.deleted, nil
}

func TestNotificationCleanJobRun(t *testing.T) {
	repo := &fakeNotificationRepo{deleted: 5}
	job := NewNotificationCleanJob(repo)

	job.Run()

	// 清理阈值应在 30 天前附近
	want := time.Now().AddDate(0, 0, -30)
	if repo.cutoff.Before(want.Add(-time.Minute)) || repo.cutoff.After(want.Add(time.Minute)) {
		t.Errorf("清理阈值不符: %v", repo.cutoff)
	}
}
