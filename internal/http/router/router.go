package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ignatzorin/job-qualifier/internal/config"
	"github.com/ignatzorin/job-qualifier/internal/http/handlers"
	"github.com/ignatzorin/job-qualifier/internal/http/middleware"
	"github.com/ignatzorin/job-qualifier/internal/web"
)

func SetupRouter(
	cfg *config.Config,
	formHandler *handlers.FormHandler,
	qualificationHandler *handlers.QualificationHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.AccessLog())
	r.Use(middleware.ErrorHandler())
	r.SetHTMLTemplate(web.MustParseTemplates())

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Форма и API делят один лимит на IP.
	submitRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)

	r.GET("/", formHandler.Show)
	r.POST("/", submitRateLimit, formHandler.Submit)

	api := r.Group("/api")
	api.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	{
		api.GET("/positions", qualificationHandler.ListPositions)
		api.POST("/qualifications", submitRateLimit, qualificationHandler.Check)
		api.OPTIONS("/*path", func(c *gin.Context) {})
	}

	return r
}
