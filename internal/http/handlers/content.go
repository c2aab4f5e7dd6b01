package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/boostithub/portfolio-backend/internal/platform/errors"
	"github.com/boostithub/portfolio-backend/internal/services"
)

type ContentHandler struct {
	content     services.ContentService
	serviceName string
	version     string
}

func NewContentHandler(content services.ContentService, serviceName, version string) *ContentHandler {
	return &ContentHandler{
		content:     content,
		serviceName: serviceName,
		version:     version,
	}
}

// GET /api/
func (h *ContentHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.serviceName, "version": h.version})
}

// GET /api/profile
func (h *ContentHandler) GetProfile(c *gin.Context) {
	view, err := h.content.GetProfile(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile information not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching profile: %v", err)})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/skills
func (h *ContentHandler) GetSkills(c *gin.Context) {
	rows, err := h.content.GetSkills(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching skills: %v", err)})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/experience
func (h *ContentHandler) GetExperience(c *gin.Context) {
	rows, err := h.content.GetExperience(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching experience: %v", err)})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/projects
func (h *ContentHandler) GetProjects(c *gin.Context) {
	rows, err := h.content.GetProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching projects: %v", err)})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/testimonials
func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	rows, err := h.content.GetTestimonials(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error fetching testimonials: %v", err)})
		return
	}
	c.JSON(http.StatusOK, rows)
}
