package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showfolio/backend/internal/service"
	"github.com/showfolio/backend/internal/types"
)

// ExperienceHandler serves the owner-scoped work-experience endpoints.
type ExperienceHandler struct {
	portfolio *service.PortfolioService
}

func NewExperienceHandler(portfolio *service.PortfolioService) *ExperienceHandler {
	return &ExperienceHandler{portfolio: portfolio}
}

func (h *ExperienceHandler) RegisterRoutes(router *gin.RouterGroup) {
	experience := router.Group("/experience")
	{
		experience.GET("", h.ListExperiences)
		experience.POST("", h.CreateExperience)
		experience.PUT("/:id", h.UpdateExperience)
		experience.DELETE("/:id", h.DeleteExperience)
	}
}

func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	experiences, err := h.portfolio.ListExperiences(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req types.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Company, position and start_date required"})
		return
	}

	experience, err := h.portfolio.CreateExperience(ownerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Experience created",
		"id":      experience.ID,
	})
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.portfolio.UpdateExperience(id, ownerID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience updated"})
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.portfolio.DeleteExperience(id, ownerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted"})
}
