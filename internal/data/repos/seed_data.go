package repos

import (
	"time"

	"github.com/boostithub/portfolio-backend/internal/domain"
)

func defaultProfile() *domain.Profile {
	now := time.Now().UTC()
	return &domain.Profile{
		ID:           domain.NewDocID(),
		Name:         "Jennifer Ann Lowe",
		Tagline:      "Transforming Challenges Into Success Stories",
		Subtitle:     "Transformation Coach & Strategic Financial Consultant",
		Email:        "jenn@boostithub.com",
		Phone:        "(808) 294-1414",
		Location:     "Hawaii, USA",
		Website:      "stayvolcano.com",
		ProfileImage: "https://customer-assets.emergentagent.com/job_206f622d-a351-459e-9358-22cbc368f865/artifacts/3tq2mims_Jenn%20blue%20background.png",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func defaultAbout() *domain.AboutSection {
	now := time.Now().UTC()
	return &domain.AboutSection{
		ID:          domain.NewDocID(),
		Title:       "About Me",
		Description: "I'm built differently - I thrive on solving complex regulatory challenges and tackling overwhelming problems that others avoid. My superpower is transforming obstacles that paralyze people into breakthrough solutions, whether it's navigating complex statutes, codes, or innovative financial strategies.",
		Story: []string{
			"With over 15 years in innovative financial services, I've built my expertise on unconventional strategies that create real results. From forensic accounting that revealed hidden business losses to achieving exceptional performance in competitive markets, I excel where complexity meets opportunity.",
			"My transformation journey - from overcoming significant personal challenges to qualifying for the Kona Ironman World Championship - taught me that our greatest obstacles become our greatest strengths. I help purpose-driven entrepreneurs navigate their most daunting challenges using proven methodologies.",
			"Whether it's regulatory navigation, innovative financial strategies, or personal transformation, I bring the same fearless problem-solving approach and relentless efficiency that has defined my success across industries.",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func defaultSkills() []*domain.SkillCategory {
	now := time.Now().UTC()
	categories := []struct {
		category string
		items    []string
	}{
		{
			category: "Strategic Problem-Solving",
			items:    []string{"Complex Regulatory Navigation", "Forensic Business Analysis", "Systematic Process Optimization", "Crisis Resolution", "Strategic Implementation"},
		},
		{
			category: "Innovative Financial Services",
			items:    []string{"Infinite Banking Strategies", "Credit Repair & Consumer Law", "Alternative Financial Solutions", "Banking System Analysis", "Wealth Building Strategies"},
		},
		{
			category: "Business Operations",
			items:    []string{"Revenue Optimization", "Operations Management", "Vendor Coordination", "Performance Analysis", "System Integration"},
		},
		{
			category: "Transformation Coaching",
			items:    []string{"Personal Development", "Goal Achievement Systems", "Change Management", "Strategic Planning", "Mindset Transformation"},
		},
		{
			category: "Technology & Systems",
			items:    []string{"Process Automation", "Data Analytics", "Digital Strategy", "System Implementation", "Performance Tracking"},
		},
	}

	out := make([]*domain.SkillCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, &domain.SkillCategory{
			ID:        domain.NewDocID(),
			Category:  c.category,
			Items:     c.items,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}
