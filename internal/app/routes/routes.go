// Package routes wires the HTTP route table
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alumniconnect/backend/internal/app/controllers"
	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/middleware"
	"github.com/alumniconnect/backend/internal/pkg/auth"
)

// Controllers bundles everything SetupRouter binds
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Profile    *controllers.ProfileController
	Job        *controllers.JobController
	Event      *controllers.EventController
	Mentorship *controllers.MentorshipController
	Story      *controllers.StoryController
	Admin      *controllers.AdminController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	jwtService *auth.JWTService,
	userRepo repositories.IUserRepository,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// --- Public auth routes ---
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", ctrl.Auth.Register)
		authRoutes.POST("/login", ctrl.Auth.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService, userRepo))
	{
		authenticated.GET("/auth/me", ctrl.Auth.Me)
		authenticated.GET("/protected/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "pong"})
		})

		// User administration; the approved-alumni listing is the one
		// student-facing route in the group.
		users := authenticated.Group("/users")
		{
			users.GET("/alumni/approved",
				middleware.AllowRoles(models.RoleStudent),
				ctrl.User.ListApprovedAlumni)

			usersAdmin := users.Group("")
			usersAdmin.Use(middleware.AllowRoles(models.RoleAdmin))
			{
				usersAdmin.GET("", ctrl.User.ListUsers)
				usersAdmin.PATCH("/:userId/approve", ctrl.User.ApproveAlumni)
			}
		}

		profiles := authenticated.Group("/profiles")
		{
			profiles.GET("/me", ctrl.Profile.GetMyProfile)
			profiles.PUT("/me", ctrl.Profile.UpdateMyProfile)
			profiles.GET("/directory",
				middleware.AllowRoles(models.RoleStudent, models.RoleAlumni, models.RoleAdmin),
				ctrl.Profile.Directory)
			profiles.GET("/:userId",
				middleware.AllowRoles(models.RoleAdmin),
				ctrl.Profile.GetProfileByUser)
		}

		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", ctrl.Job.ListJobs)
			jobs.GET("/:jobId", ctrl.Job.GetJob)

			jobsPosterProtected := jobs.Group("")
			jobsPosterProtected.Use(middleware.AllowRoles(models.RoleAlumni, models.RoleAdmin))
			{
				jobsPosterProtected.POST("", ctrl.Job.CreateJob)
				jobsPosterProtected.PATCH("/:jobId", ctrl.Job.UpdateJob)
				jobsPosterProtected.DELETE("/:jobId", ctrl.Job.DeleteJob)
			}
		}

		events := authenticated.Group("/events")
		{
			events.GET("", ctrl.Event.ListEvents)
			events.GET("/:eventId", ctrl.Event.GetEvent)

			eventsAdmin := events.Group("")
			eventsAdmin.Use(middleware.AllowRoles(models.RoleAdmin))
			{
				eventsAdmin.POST("", ctrl.Event.CreateEvent)
				eventsAdmin.PATCH("/:eventId", ctrl.Event.UpdateEvent)
				eventsAdmin.DELETE("/:eventId", ctrl.Event.DeleteEvent)
			}
		}

		mentorship := authenticated.Group("/mentorship")
		{
			mentorship.GET("", ctrl.Mentorship.ListPosts)
			mentorship.POST("",
				middleware.AllowRoles(models.RoleAlumni),
				ctrl.Mentorship.CreatePost)
		}

		stories := authenticated.Group("/success-stories")
		{
			stories.GET("", ctrl.Story.ListStories)
			stories.GET("/:storyId", ctrl.Story.GetStory)

			storiesAuthorProtected := stories.Group("")
			storiesAuthorProtected.Use(middleware.AllowRoles(models.RoleAlumni, models.RoleAdmin))
			{
				storiesAuthorProtected.POST("", ctrl.Story.CreateStory)
				storiesAuthorProtected.PATCH("/:storyId", ctrl.Story.UpdateStory)
				storiesAuthorProtected.DELETE("/:storyId", ctrl.Story.DeleteStory)
			}
		}

		admin := authenticated.Group("/admin")
		admin.Use(middleware.AllowRoles(models.RoleAdmin))
		{
			admin.GET("/stats", ctrl.Admin.DashboardStats)
		}
	}
}
