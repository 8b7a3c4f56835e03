package wire

import (
	"Orbit/internal/api"
	"Orbit/internal/api/config"
	"Orbit/internal/api/handler"
	"Orbit/internal/job"
	"Orbit/internal/pkg/cron"
	"Orbit/internal/pkg/mailer"
	"Orbit/internal/pkg/realtime"
	"Orbit/internal/repository"
	"Orbit/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	siteRepo := repository.NewSiteRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	mail := mailer.New(cfg.Mail)
	hub := realtime.NewHub()

	userService := service.NewUserService(userRepo, postRepo, notificationRepo, mail)
	postService := service.NewPostService(postRepo, commentRepo, likeRepo, taxonomyRepo, userRepo, mail, hub)
	featureService := service.NewFeatureService(postRepo, taxonomyRepo, userRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	siteService := service.NewSiteService(siteRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		PostHandler:         handler.NewPostHandler(postService),
		AnalyticsHandler:    handler.NewAnalyticsHandler(analyticsService),
		FeatureHandler:      handler.NewFeatureHandler(featureService),
		SiteHandler:         handler.NewSiteHandler(siteService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		RealtimeHandler:     handler.NewRealtimeHandler(hub),
	}

	router := api.SetupRouter(handlers, userService)

	cronMgr := cron.NewCronManager(job.NewNotificationCleanJob(notificationRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
