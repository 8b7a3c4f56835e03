package cron

import log "log/slog"

// InitCron 注册通知清理等后台任务并启动调度引擎
func InitCron(mgr *Manager) error {
	log.Info("Cron jobs starting", "jobs", "notification_clean")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
