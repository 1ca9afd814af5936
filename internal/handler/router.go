package handler

import (
	"net/http"
	"time"

	"hackathon-portal/internal/middleware"
	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Router assembles services, handlers, and routes over the given DB.
func Router(db *gorm.DB, tokenTTL time.Duration) *gin.Engine {
	roleSvc := service.NewRoleService(db)
	authSvc := service.NewAuthService(db)
	profileSvc := service.NewProfileService(db)
	projectSvc := service.NewProjectService(db, roleSvc)
	engagementSvc := service.NewEngagementService(db)
	scoringSvc := service.NewScoringService(db, roleSvc)
	leaderboardSvc := service.NewLeaderboardService(db, roleSvc)
	discussionSvc := service.NewDiscussionService(db, roleSvc)
	teamSvc := service.NewTeamService(db, roleSvc)
	updateSvc := service.NewUpdateService(db, roleSvc)
	registrationSvc := service.NewRegistrationService(db, roleSvc)

	authH := NewAuthHandler(authSvc, roleSvc, tokenTTL)
	profileH := NewProfileHandler(profileSvc)
	projectH := NewProjectHandler(projectSvc)
	engagementH := NewEngagementHandler(engagementSvc)
	feedbackH := NewFeedbackHandler(scoringSvc)
	leaderboardH := NewLeaderboardHandler(leaderboardSvc)
	discussionH := NewDiscussionHandler(discussionSvc)
	teamH := NewTeamHandler(teamSvc)
	updateH := NewUpdateHandler(updateSvc)
	registrationH := NewRegistrationHandler(registrationSvc)
	adminH := NewAdminHandler(roleSvc)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-New-Token"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/api/auth/signup", authH.Signup)
	r.POST("/api/auth/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/role", authH.Role)
	api.GET("/profile", profileH.Get)
	api.PUT("/profile", profileH.Update)

	api.POST("/projects", projectH.Create)
	api.GET("/projects", projectH.List)
	api.GET("/projects/:id", projectH.Get)
	api.PUT("/projects/:id", projectH.Update)
	api.DELETE("/projects/:id", projectH.Delete)
	api.POST("/projects/:id/like", engagementH.ToggleLike)
	api.POST("/projects/:id/view", engagementH.RecordView)
	api.PUT("/projects/:id/feedback", feedbackH.Save)
	api.GET("/projects/:id/feedback", feedbackH.PublicFeed)

	api.GET("/leaderboard", leaderboardH.Public)

	api.POST("/discussions", discussionH.Create)
	api.GET("/discussions", discussionH.List)
	api.GET("/discussions/:id", discussionH.Get)
	api.DELETE("/discussions/:id", discussionH.Delete)
	api.POST("/discussions/:id/replies", discussionH.CreateReply)
	api.DELETE("/replies/:id", discussionH.DeleteReply)

	api.GET("/updates", updateH.List)
	api.POST("/updates", updateH.Create)
	api.DELETE("/updates/:id", updateH.Delete)

	api.POST("/teams", teamH.Create)
	api.GET("/teams", teamH.List)
	api.GET("/teams/:id", teamH.Get)
	api.POST("/teams/:id/members", teamH.AddMember)
	api.DELETE("/teams/:id/members/:profileID", teamH.RemoveMember)

	api.POST("/registrations", registrationH.Create)
	api.GET("/registrations", registrationH.List)

	admin := api.Group("/admin")
	// the full feedback feed admits judges as well, so the service gates it
	admin.GET("/projects/:id/feedback", feedbackH.FullFeed)
	adminOnly := admin.Group("", middleware.RequireRole(roleSvc, model.RoleAdmin))
	adminOnly.GET("/leaderboard", leaderboardH.Admin)
	adminOnly.PUT("/roles/:profileID", adminH.AssignRole)

	return r
}
