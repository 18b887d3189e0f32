package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/showfolio/backend/internal/api"
	"github.com/showfolio/backend/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *api.AuthHandler
	Project    *api.ProjectHandler
	Skill      *api.SkillHandler
	Experience *api.ExperienceHandler
	Education  *api.EducationHandler
	Movie      *api.MovieHandler
}

// Setup configures the application routes. The portfolio endpoints under
// /api require a valid bearer token; /register, /login and the movie
// catalog are public. loginLimiter may be nil (no Redis configured).
func Setup(h Handlers, validator middleware.TokenValidator, loginLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	router.POST("/register", h.Auth.Register)
	if loginLimiter != nil {
		router.POST("/login", loginLimiter.Middleware(), h.Auth.Login)
	} else {
		router.POST("/login", h.Auth.Login)
	}

	// Movie catalog (no auth)
	h.Movie.RegisterRoutes(router)

	// Protected portfolio routes
	protected := router.Group("/api")
	protected.Use(middleware.RequireAuth(validator))
	{
		h.Project.RegisterRoutes(protected)
		h.Skill.RegisterRoutes(protected)
		h.Experience.RegisterRoutes(protected)
		h.Education.RegisterRoutes(protected)
	}

	return router
}
