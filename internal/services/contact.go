package services

import (
	"context"
	"fmt"

	"github.com/boostithub/portfolio-backend/internal/clients/ghl"
	"github.com/boostithub/portfolio-backend/internal/data/repos"
	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

const submitConfirmation = "Thank you for your message! I'll get back to you within 24 hours."

type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

type ContactService interface {
	Submit(ctx context.Context, in domain.ContactMessageInput) (*SubmitResult, error)
	ListMessages(ctx context.Context) ([]domain.ContactMessage, error)
}

type contactService struct {
	log      *logger.Logger
	messages repos.ContactMessageRepo
	crm      ghl.Client
}

func NewContactService(log *logger.Logger, messages repos.ContactMessageRepo, crm ghl.Client) ContactService {
	return &contactService{
		log:      log.With("service", "ContactService"),
		messages: messages,
		crm:      crm,
	}
}

// Submit runs the three submission stages in order: persist locally
// (fatal on failure), sync the contact to the CRM, then open an
// opportunity for it. The CRM stages never fail the request.
func (s *contactService) Submit(ctx context.Context, in domain.ContactMessageInput) (*SubmitResult, error) {
	id, err := s.messages.Create(ctx, domain.NewContactMessage(in))
	if err != nil {
		return nil, fmt.Errorf("persist contact message: %w", err)
	}

	s.syncToCRM(ctx, in)

	return &SubmitResult{
		Success: true,
		Message: submitConfirmation,
		ID:      id,
	}, nil
}

func (s *contactService) syncToCRM(ctx context.Context, in domain.ContactMessageInput) {
	contact := s.crm.CreateContact(ctx, ghl.ContactInput{
		Name:  in.Name,
		Email: in.Email,
	})
	if contact == nil {
		s.log.Warn("CRM contact sync skipped or failed", "email", in.Email)
		return
	}

	contactID := contact.ContactID()
	if contactID == "" {
		s.log.Warn("CRM contact response carried no id", "email", in.Email)
		return
	}

	if opportunity := s.crm.CreateOpportunity(ctx, contactID, in.ServiceType); opportunity == nil {
		s.log.Warn("CRM opportunity sync failed", "contact_id", contactID, "service_type", in.ServiceType)
	}
}

func (s *contactService) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx)
}
