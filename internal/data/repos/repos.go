package repos

// Collection names mirror the store layout this service inherited;
// renaming any of them orphans existing documents.
const (
	collProfile         = "profile"
	collAbout           = "about"
	collSkills          = "skills"
	collExperience      = "experience"
	collProjects        = "projects"
	collTestimonials    = "testimonials"
	collContactMessages = "contact_messages"
)

// listLimit bounds every listing read; the content sets are small and
// anything past this is not meant for the public surface anyway.
const listLimit = 100
