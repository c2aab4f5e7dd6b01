package app

import (
	internalhttp "github.com/boostithub/portfolio-backend/internal/http"
	httpH "github.com/boostithub/portfolio-backend/internal/http/handlers"
)

type Handlers struct {
	Content *httpH.ContentHandler
	Contact *httpH.ContactHandler
	Health  *httpH.HealthHandler
}

func wireHandlers(cfg Config, serviceset Services) Handlers {
	return Handlers{
		Content: httpH.NewContentHandler(serviceset.Content, cfg.ServiceName, cfg.Version),
		Contact: httpH.NewContactHandler(serviceset.Contact),
		Health:  httpH.NewHealthHandler(),
	}
}

func wireServer(cfg Config, handlerset Handlers) *internalhttp.Server {
	return internalhttp.NewServer(internalhttp.RouterConfig{
		ContentHandler: handlerset.Content,
		ContactHandler: handlerset.Contact,
		HealthHandler:  handlerset.Health,
		AllowedOrigins: cfg.AllowedOrigins,
	})
}
