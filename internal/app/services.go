package app

import (
	"github.com/boostithub/portfolio-backend/internal/clients/ghl"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
	"github.com/boostithub/portfolio-backend/internal/platform/rediscache"
	"github.com/boostithub/portfolio-backend/internal/services"
)

type Services struct {
	Content services.ContentService
	Contact services.ContactService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, cache rediscache.Cache, crm ghl.Client) Services {
	return Services{
		Content: services.NewContentService(
			log,
			reposet.Profiles,
			reposet.About,
			reposet.Skills,
			reposet.Experience,
			reposet.Projects,
			reposet.Testimonials,
			cache,
			cfg.CacheTTL,
		),
		Contact: services.NewContactService(log, reposet.Messages, crm),
	}
}
