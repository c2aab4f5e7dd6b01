package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/boostithub/portfolio-backend/internal/http/handlers"
	httpMW "github.com/boostithub/portfolio-backend/internal/http/middleware"
)

type RouterConfig struct {
	ContentHandler *httpH.ContentHandler
	ContactHandler *httpH.ContactHandler
	HealthHandler  *httpH.HealthHandler

	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.ContentHandler != nil {
			api.GET("/", cfg.ContentHandler.Root)
			api.GET("/profile", cfg.ContentHandler.GetProfile)
			api.GET("/skills", cfg.ContentHandler.GetSkills)
			api.GET("/experience", cfg.ContentHandler.GetExperience)
			api.GET("/projects", cfg.ContentHandler.GetProjects)
			api.GET("/testimonials", cfg.ContentHandler.GetTestimonials)
		}

		if cfg.ContactHandler != nil {
			api.POST("/contact", cfg.ContactHandler.Submit)
			api.GET("/admin/messages", cfg.ContactHandler.ListMessages)
		}
	}

	return r
}
