package services

import (
	"context"
	"fmt"
	"time"

	"github.com/boostithub/portfolio-backend/internal/data/repos"
	"github.com/boostithub/portfolio-backend/internal/domain"
	errs "github.com/boostithub/portfolio-backend/internal/platform/errors"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
	"github.com/boostithub/portfolio-backend/internal/platform/rediscache"
)

type AboutView struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Story       []string `json:"story"`
}

// ProfileView is the merged profile+about payload served by the public
// profile endpoint. Field names match what the site's frontend binds.
type ProfileView struct {
	Name         string    `json:"name"`
	Tagline      string    `json:"tagline"`
	Subtitle     string    `json:"subtitle"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Website      string    `json:"website"`
	ProfileImage string    `json:"profileImage"`
	About        AboutView `json:"about"`
}

type ContentService interface {
	GetProfile(ctx context.Context) (*ProfileView, error)
	GetSkills(ctx context.Context) ([]domain.SkillCategory, error)
	GetExperience(ctx context.Context) ([]domain.Experience, error)
	GetProjects(ctx context.Context) ([]domain.Project, error)
	GetTestimonials(ctx context.Context) ([]domain.Testimonial, error)
}

const (
	cacheKeyProfile      = "portfolio:profile"
	cacheKeySkills       = "portfolio:skills"
	cacheKeyExperience   = "portfolio:experience"
	cacheKeyProjects     = "portfolio:projects"
	cacheKeyTestimonials = "portfolio:testimonials"
)

type contentService struct {
	log          *logger.Logger
	profiles     repos.ProfileRepo
	about        repos.AboutRepo
	skills       repos.SkillRepo
	experience   repos.ExperienceRepo
	projects     repos.ProjectRepo
	testimonials repos.TestimonialRepo

	cache    rediscache.Cache
	cacheTTL time.Duration
}

// NewContentService composes the read side. cache may be nil, in which
// case every read goes straight to the store.
func NewContentService(
	log *logger.Logger,
	profiles repos.ProfileRepo,
	about repos.AboutRepo,
	skills repos.SkillRepo,
	experience repos.ExperienceRepo,
	projects repos.ProjectRepo,
	testimonials repos.TestimonialRepo,
	cache rediscache.Cache,
	cacheTTL time.Duration,
) ContentService {
	return &contentService{
		log:          log.With("service", "ContentService"),
		profiles:     profiles,
		about:        about,
		skills:       skills,
		experience:   experience,
		projects:     projects,
		testimonials: testimonials,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (s *contentService) GetProfile(ctx context.Context) (*ProfileView, error) {
	var cached ProfileView
	if s.cacheGet(ctx, cacheKeyProfile, &cached) {
		return &cached, nil
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	about, err := s.about.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil || about == nil {
		return nil, fmt.Errorf("profile information: %w", errs.ErrNotFound)
	}

	view := &ProfileView{
		Name:         profile.Name,
		Tagline:      profile.Tagline,
		Subtitle:     profile.Subtitle,
		Email:        profile.Email,
		Phone:        profile.Phone,
		Location:     profile.Location,
		Website:      profile.Website,
		ProfileImage: profile.ProfileImage,
		About: AboutView{
			Title:       about.Title,
			Description: about.Description,
			Story:       about.Story,
		},
	}
	s.cachePut(ctx, cacheKeyProfile, view)
	return view, nil
}

func (s *contentService) GetSkills(ctx context.Context) ([]domain.SkillCategory, error) {
	var cached []domain.SkillCategory
	if s.cacheGet(ctx, cacheKeySkills, &cached) {
		return cached, nil
	}
	rows, err := s.skills.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, cacheKeySkills, rows)
	return rows, nil
}

func (s *contentService) GetExperience(ctx context.Context) ([]domain.Experience, error) {
	var cached []domain.Experience
	if s.cacheGet(ctx, cacheKeyExperience, &cached) {
		return cached, nil
	}
	rows, err := s.experience.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, cacheKeyExperience, rows)
	return rows, nil
}

func (s *contentService) GetProjects(ctx context.Context) ([]domain.Project, error) {
	var cached []domain.Project
	if s.cacheGet(ctx, cacheKeyProjects, &cached) {
		return cached, nil
	}
	rows, err := s.projects.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, cacheKeyProjects, rows)
	return rows, nil
}

func (s *contentService) GetTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var cached []domain.Testimonial
	if s.cacheGet(ctx, cacheKeyTestimonials, &cached) {
		return cached, nil
	}
	rows, err := s.testimonials.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, cacheKeyTestimonials, rows)
	return rows, nil
}

// cacheGet reports true only on a clean hit; cache failures degrade to
// a store read.
func (s *contentService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, out)
	if err != nil {
		s.log.Debug("Cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *contentService) cachePut(ctx context.Context, key string, val any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, val, s.cacheTTL); err != nil {
		s.log.Debug("Cache write failed", "key", key, "error", err)
	}
}
