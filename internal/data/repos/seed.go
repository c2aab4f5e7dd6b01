package repos

import (
	"context"
	"fmt"

	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

// Seeder inserts the fixed default portfolio content on an empty store.
// The guard is profile-only: once a profile document exists the whole
// run is a no-op, even if other collections were emptied out of band.
type Seeder struct {
	log      *logger.Logger
	profiles ProfileRepo
	about    AboutRepo
	skills   SkillRepo
}

func NewSeeder(baseLog *logger.Logger, profiles ProfileRepo, about AboutRepo, skills SkillRepo) *Seeder {
	return &Seeder{
		log:      baseLog.With("service", "Seeder"),
		profiles: profiles,
		about:    about,
		skills:   skills,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.profiles.Get(ctx)
	if err != nil {
		return fmt.Errorf("check existing profile: %w", err)
	}
	if existing != nil {
		s.log.Debug("Profile already present, skipping default data seed")
		return nil
	}

	if err := s.profiles.Insert(ctx, defaultProfile()); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	if err := s.about.Insert(ctx, defaultAbout()); err != nil {
		return fmt.Errorf("seed about section: %w", err)
	}
	for _, skill := range defaultSkills() {
		if err := s.skills.Insert(ctx, skill); err != nil {
			return fmt.Errorf("seed skill category %q: %w", skill.Category, err)
		}
	}

	s.log.Info("Default portfolio data initialized")
	return nil
}
