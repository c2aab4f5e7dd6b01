package app

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boostithub/portfolio-backend/internal/data/repos"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

type Repos struct {
	Profiles     repos.ProfileRepo
	About        repos.AboutRepo
	Skills       repos.SkillRepo
	Experience   repos.ExperienceRepo
	Projects     repos.ProjectRepo
	Testimonials repos.TestimonialRepo
	Messages     repos.ContactMessageRepo
}

func wireRepos(db *mongo.Database, log *logger.Logger) Repos {
	return Repos{
		Profiles:     repos.NewProfileRepo(db, log),
		About:        repos.NewAboutRepo(db, log),
		Skills:       repos.NewSkillRepo(db, log),
		Experience:   repos.NewExperienceRepo(db, log),
		Projects:     repos.NewProjectRepo(db, log),
		Testimonials: repos.NewTestimonialRepo(db, log),
		Messages:     repos.NewContactMessageRepo(db, log),
	}
}
