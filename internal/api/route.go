package api

import (
	"Orbit/internal/api/middleware"
	"Orbit/internal/pkg/consts"
	"Orbit/internal/pkg/logger"
	"Orbit/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, userService service.UserService) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(userService)
	authorOrAdmin := middleware.CheckRoles(consts.RoleAuthor, consts.RoleAdmin)
	adminOnly := middleware.CheckRoles(consts.RoleAdmin)

	apiGroup := r.Group("/api/v1")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "pong",
			})
		})

		apiGroup.GET("/realtime", group.RealtimeHandler.Connect)

		// 无需登录即可访问的接口
		apiGroup.POST("/register", group.UserHandler.Register)
		apiGroup.POST("/activation", group.UserHandler.Activate)
		apiGroup.POST("/resend-otp", middleware.RateLimit(3, 15*time.Minute), group.UserHandler.ResendOTP)
		apiGroup.POST("/login", group.UserHandler.Login)
		apiGroup.POST("/social", group.UserHandler.SocialAuth)
		apiGroup.POST("/forget-password", group.UserHandler.ForgotPassword)
		apiGroup.POST("/reset-password/:token", group.UserHandler.ResetPassword)
		apiGroup.POST("/contact-us", middleware.RateLimit(3, 15*time.Minute), group.UserHandler.ContactUs)
		apiGroup.GET("/get-author-profile/:id", group.UserHandler.GetAuthorProfile)

		apiGroup.GET("/get-all-posts", group.PostHandler.ListPublished)
		apiGroup.GET("/get-single-post/:slug", group.PostHandler.GetPostBySlug)
		apiGroup.POST("/post-view/:slug", group.PostHandler.IncrementViews)
		apiGroup.GET("/get-comments/:slug", group.PostHandler.GetComments)
		apiGroup.GET("/get-category", group.FeatureHandler.ListCategories)
		apiGroup.GET("/get-tags", group.FeatureHandler.ListTags)

		apiGroup.POST("/related-post", group.FeatureHandler.RelatedPosts)
		apiGroup.GET("/featured-post", group.FeatureHandler.FeaturedPosts)
		apiGroup.GET("/latest-post", group.FeatureHandler.LatestPosts)
		apiGroup.GET("/popular-tags", group.FeatureHandler.PopularTags)
		apiGroup.GET("/featured-author", group.FeatureHandler.FeaturedAuthor)

		apiGroup.GET("/get-site-settings", group.SiteHandler.GetSettings)

		// 需要登录的接口
		authGroup := apiGroup.Group("")
		authGroup.Use(auth)
		{
			authGroup.GET("/logout", group.UserHandler.Logout)
			authGroup.GET("/me", group.UserHandler.GetMe)
			authGroup.PUT("/update-profile", group.UserHandler.UpdateProfile)
			authGroup.PUT("/update-avatar", group.UserHandler.UpdateAvatar)
			authGroup.PUT("/change-password", group.UserHandler.ChangePassword)
			authGroup.POST("/author-request", group.UserHandler.AuthorRequest)

			authGroup.POST("/post-comment/:slug", group.PostHandler.AddComment)
			authGroup.POST("/comment-reply", group.PostHandler.AddReply)
			authGroup.POST("/like-post", group.PostHandler.ToggleLike)
			authGroup.GET("/liked-post", group.PostHandler.ListLikedPosts)
		}

		// 需要登录 & 拥有 author 或 admin 角色
		authorGroup := authGroup.Group("")
		authorGroup.Use(authorOrAdmin)
		{
			authorGroup.POST("/create-post", group.PostHandler.CreatePost)
			authorGroup.PUT("/update-post/:id", group.PostHandler.UpdatePost)
			authorGroup.DELETE("/delete-post/:id", group.PostHandler.DeletePost)
			authorGroup.PUT("/publish-post/:id", group.PostHandler.PublishPost)
			authorGroup.GET("/get-author-post", group.PostHandler.ListMine)
			authorGroup.GET("/recent-activity", group.PostHandler.RecentActivity)

			authorGroup.GET("/post-analytics/:days", group.AnalyticsHandler.GetPostAnalytics)
		}

		// 需要登录 & 拥有 admin 角色
		adminGroup := authGroup.Group("")
		adminGroup.Use(adminOnly)
		{
			adminGroup.GET("/get-all-users", group.UserHandler.ListUsers)
			adminGroup.GET("/user-details/:id", group.UserHandler.GetUserDetail)
			adminGroup.PUT("/update-role/:id", group.UserHandler.UpdateRole)
			adminGroup.DELETE("/delete-user/:id", group.UserHandler.DeleteUser)

			adminGroup.GET("/get-all-post-admin", group.PostHandler.ListAll)
			adminGroup.PUT("/unpublish-post", group.PostHandler.UnpublishPost)
			adminGroup.DELETE("/delete-post-admin/:id", group.PostHandler.DeletePost)
			adminGroup.GET("/get-all-comments", group.PostHandler.ListAllComments)
			adminGroup.DELETE("/delete-comment/:id", group.PostHandler.DeleteComment)
			adminGroup.DELETE("/delete-reply/:id", group.PostHandler.DeleteReply)
			adminGroup.PUT("/edit-category", group.FeatureHandler.EditCategory)
			adminGroup.PUT("/edit-tag", group.FeatureHandler.EditTag)

			adminGroup.POST("/create-site-settings", group.SiteHandler.UpdateSettings)
			adminGroup.PUT("/update-site-settings", group.SiteHandler.UpdateSettings)

			adminGroup.GET("/get-notification", group.NotificationHandler.List)
			adminGroup.PUT("/update-notification/:id", group.NotificationHandler.MarkRead)
			adminGroup.PUT("/read-all-notifications", group.NotificationHandler.MarkAllRead)

			adminGroup.GET("/admin-overview/:days", group.AnalyticsHandler.GetAdminOverview)
			adminGroup.GET("/admin-post-analytics", group.AnalyticsHandler.GetAdminPostAnalytics)
			adminGroup.GET("/admin-user-analytics", group.AnalyticsHandler.GetUserAnalytics)
			adminGroup.GET("/admin-growth-reports", group.AnalyticsHandler.GetGrowthReports)
		}
	}

	return r
}
