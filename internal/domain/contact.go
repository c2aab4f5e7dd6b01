package domain

import "time"

const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

type ContactMessage struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Subject     string    `bson:"subject" json:"subject"`
	Message     string    `bson:"message" json:"message"`
	ServiceType string    `bson:"service_type" json:"service_type"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type ContactMessageInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Subject     string `json:"subject" binding:"required"`
	Message     string `json:"message" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
}

// NewContactMessage builds the full row from a submission: id and
// timestamps are generated here, status always starts at "new".
func NewContactMessage(in ContactMessageInput) *ContactMessage {
	now := time.Now().UTC()
	return &ContactMessage{
		ID:          NewDocID(),
		Name:        in.Name,
		Email:       in.Email,
		Subject:     in.Subject,
		Message:     in.Message,
		ServiceType: in.ServiceType,
		Status:      ContactStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
