package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(c.Config.App.ClientURL))
	router.Use(middleware.ClientIPMiddleware())

	v1 := router.Group("/api/v1")

	v1.GET("/health", healthHandler(c))

	// Auth
	auth := v1.Group("/auth")
	{
		auth.POST("/login",
			middleware.RateLimit(c.Cache, middleware.RateLimitConfig{
				Scope:   "login",
				Max:     c.Config.RateLimit.LoginMaxPer15Min,
				Window:  15 * time.Minute,
				Message: "Too many login attempts, try again later",
			}),
			c.UserHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}

	// Public site
	v1.GET("/projects", c.ProjectHandler.ListProjects)
	v1.GET("/projects/:slug", c.ProjectHandler.GetProjectBySlug)
	v1.GET("/skills", c.SkillHandler.ListSkills)
	v1.GET("/skills/:slug", c.SkillHandler.GetSkillBySlug)
	v1.GET("/timeline", c.TimelineHandler.ListTimeline)
	v1.GET("/timeline/:slug", c.TimelineHandler.GetTimelineItemBySlug)

	v1.POST("/contact",
		middleware.RateLimit(c.Cache, middleware.RateLimitConfig{
			Scope:            "contact",
			Max:              c.Config.RateLimit.ContactMaxPerHour,
			Window:           time.Hour,
			IncludeUserAgent: true,
			Message:          "Too many messages, try again later",
		}),
		c.ContactHandler.SubmitContactMessage)

	// Admin dashboard
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("/projects", c.ProjectHandler.AdminListProjects)
		admin.POST("/projects", c.ProjectHandler.CreateProject)
		admin.GET("/projects/:id", c.ProjectHandler.AdminGetProject)
		admin.PUT("/projects/:id", c.ProjectHandler.UpdateProject)
		admin.DELETE("/projects/:id", c.ProjectHandler.DeleteProject)

		admin.GET("/skills", c.SkillHandler.AdminListSkills)
		admin.POST("/skills", c.SkillHandler.CreateSkill)
		admin.GET("/skills/:id", c.SkillHandler.AdminGetSkill)
		admin.PUT("/skills/:id", c.SkillHandler.UpdateSkill)
		admin.DELETE("/skills/:id", c.SkillHandler.DeleteSkill)

		admin.GET("/timeline", c.TimelineHandler.AdminListTimeline)
		admin.POST("/timeline", c.TimelineHandler.CreateTimelineItem)
		admin.GET("/timeline/:id", c.TimelineHandler.AdminGetTimelineItem)
		admin.PUT("/timeline/:id", c.TimelineHandler.UpdateTimelineItem)
		admin.DELETE("/timeline/:id", c.TimelineHandler.DeleteTimelineItem)

		admin.GET("/messages", c.ContactHandler.AdminListMessages)
		admin.GET("/messages/stats", c.ContactHandler.AdminInboxStats)
		admin.GET("/messages/:id", c.ContactHandler.AdminGetMessage)
		admin.PUT("/messages/:id", c.ContactHandler.AdminUpdateMessage)
		admin.DELETE("/messages/:id", c.ContactHandler.AdminDeleteMessage)
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := "ok"
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			status = "degraded"
			checks["database"] = err.Error()
		}
		if err := c.Cache.Ping(checkCtx); err != nil {
			status = "degraded"
			checks["redis"] = err.Error()
		}

		code := http.StatusOK
		if status != "ok" {
			code = http.StatusServiceUnavailable
		}

		response.Success(ctx, code, gin.H{
			"status":  status,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
