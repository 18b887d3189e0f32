package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showfolio/backend/internal/service"
	"github.com/showfolio/backend/internal/types"
)

// EducationHandler serves the owner-scoped education endpoints.
type EducationHandler struct {
	portfolio *service.PortfolioService
}

func NewEducationHandler(portfolio *service.PortfolioService) *EducationHandler {
	return &EducationHandler{portfolio: portfolio}
}

func (h *EducationHandler) RegisterRoutes(router *gin.RouterGroup) {
	education := router.Group("/education")
	{
		education.GET("", h.ListEducations)
		education.POST("", h.CreateEducation)
		education.PUT("/:id", h.UpdateEducation)
		education.DELETE("/:id", h.DeleteEducation)
	}
}

func (h *EducationHandler) ListEducations(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	educations, err := h.portfolio.ListEducations(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, educations)
}

func (h *EducationHandler) CreateEducation(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req types.CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Institution, degree and start_date required"})
		return
	}

	education, err := h.portfolio.CreateEducation(ownerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Education created",
		"id":      education.ID,
	})
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.portfolio.UpdateEducation(id, ownerID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Education updated"})
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.portfolio.DeleteEducation(id, ownerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Education deleted"})
}
