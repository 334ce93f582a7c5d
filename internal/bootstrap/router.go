package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"pms-project-backend/internal/handlers"
	"pms-project-backend/internal/middleware"
	"pms-project-backend/internal/services"
)

type RouterDeps struct {
	Projects services.ProjectStore
	// DB may be nil; health then reports the database as disabled.
	DB handlers.Pinger
	// CORSAllowedOrigins of ["*"] or empty allows every origin.
	CORSAllowedOrigins []string
	EnableSwagger      bool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(handlers.Recovered))
	r.Use(cors.New(corsConfig(dep.CORSAllowedOrigins)))

	r.NoRoute(handlers.NotFound)

	healthHandler := handlers.NewHealthHandler(dep.DB)
	r.GET("/health", healthHandler.Health)

	if dep.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	projectsHandler := handlers.NewProjectsHandler(services.NewProjectService(dep.Projects))
	projectsHandler.Register(r.Group("/api"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	cfg.MaxAge = 12 * time.Hour

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// SetGinMode switches gin to release mode in production.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
