package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"foodbridge/backend/config"
	"foodbridge/backend/internal/api/handler"
	"foodbridge/backend/internal/api/middleware"
	"foodbridge/backend/pkg/jwt"
	"foodbridge/backend/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine and mounts every route.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth endpoints (unauthenticated, rate limited)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// everything else requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// event catalog and registration
			events := authorized.Group("/events")
			{
				events.GET("", h.Event.List)
				events.GET("/:id", h.Event.Get)
				events.POST("/:id/register", h.Event.Register)
			}
			authorized.GET("/assignments", h.Event.ListMine)

			// volunteer dashboard
			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("", h.Dashboard.GetSummary)
				dashboard.GET("/calendar.ics", h.Dashboard.CalendarFeed)
			}

			// hour logging
			hours := authorized.Group("/hours")
			{
				hours.POST("", h.Hours.Log)
				hours.GET("", h.Hours.ListMine)
			}

			// profile
			authorized.GET("/profile", h.User.GetProfile)
			authorized.PUT("/profile", h.User.UpdateProfile)

			// AI advisor
			authorized.GET("/recommendations", middleware.RateLimit(rdb, 10, time.Minute), h.Recommendation.Recommend)

			// admin operations
			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth("admin"))
			{
				admin.GET("/volunteers", h.User.ListVolunteers)

				admin.POST("/events", h.Event.Create)
				admin.PUT("/events/:id", h.Event.Update)
				admin.POST("/events/:id/shifts", h.Event.CreateShift)
				admin.PATCH("/assignments/:id/status", h.Event.UpdateAssignmentStatus)

				admin.GET("/hours/pending", h.Hours.ListPending)
				admin.POST("/hours/:id/verify", h.Hours.Verify)

				admin.GET("/reports/hours", h.Export.ExportHoursReport)
				admin.POST("/notifications/draft", h.Recommendation.DraftNotification)
			}
		}
	}

	return r
}
