package api

import "Orbit/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	PostHandler         *handler.PostHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	FeatureHandler      *handler.FeatureHandler
	SiteHandler         *handler.SiteHandler
	NotificationHandler *handler.NotificationHandler
	RealtimeHandler     *handler.RealtimeHandler
}
