package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/services"
)

type ContactHandler struct {
	contact services.ContactService
}

func NewContactHandler(contact services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// POST /api/contact
// body: { "name": ..., "email": ..., "subject": ..., "message": ..., "service_type": ... }
func (h *ContactHandler) Submit(c *gin.Context) {
	var in domain.ContactMessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	result, err := h.contact.Submit(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error submitting contact form: %v", err)})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/admin/messages
func (h *ContactHandler) ListMessages(c *gin.Context) {
	rows, err := h.contact.ListMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching messages: %v", err)})
		return
	}
	c.JSON(http.StatusOK, rows)
}
