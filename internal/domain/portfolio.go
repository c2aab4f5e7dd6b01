package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewDocID generates the application-level document identifier. The
// store keeps its own native _id alongside; this one is what leaves
// the API.
func NewDocID() string {
	return uuid.NewString()
}

type Profile struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Tagline      string    `bson:"tagline" json:"tagline"`
	Subtitle     string    `bson:"subtitle" json:"subtitle"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Location     string    `bson:"location" json:"location"`
	Website      string    `bson:"website" json:"website"`
	ProfileImage string    `bson:"profile_image" json:"profile_image"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

type AboutSection struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Story       []string  `bson:"story" json:"story"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type SkillCategory struct {
	ID        string    `bson:"id" json:"id"`
	Category  string    `bson:"category" json:"category"`
	Items     []string  `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type Experience struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Company      string    `bson:"company" json:"company"`
	Period       string    `bson:"period" json:"period"`
	Location     string    `bson:"location" json:"location"`
	Type         string    `bson:"type" json:"type"`
	Achievements []string  `bson:"achievements" json:"achievements"`
	Order        int       `bson:"order" json:"order"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

type Project struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Image       string    `bson:"image" json:"image"`
	Metrics     []string  `bson:"metrics" json:"metrics"`
	Tags        []string  `bson:"tags" json:"tags"`
	Order       int       `bson:"order" json:"order"`
	Featured    bool      `bson:"featured" json:"featured"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	Author    string    `bson:"author" json:"author"`
	Role      string    `bson:"role" json:"role"`
	Featured  bool      `bson:"featured" json:"featured"`
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
