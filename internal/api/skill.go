package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showfolio/backend/internal/service"
	"github.com/showfolio/backend/internal/types"
)

// SkillHandler serves the owner-scoped skill endpoints.
type SkillHandler struct {
	portfolio *service.PortfolioService
}

func NewSkillHandler(portfolio *service.PortfolioService) *SkillHandler {
	return &SkillHandler{portfolio: portfolio}
}

func (h *SkillHandler) RegisterRoutes(router *gin.RouterGroup) {
	skills := router.Group("/skills")
	{
		skills.GET("", h.ListSkills)
		skills.POST("", h.CreateSkill)
		skills.PUT("/:id", h.UpdateSkill)
		skills.DELETE("/:id", h.DeleteSkill)
	}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	skills, err := h.portfolio.ListSkills(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req types.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name required"})
		return
	}

	skill, err := h.portfolio.CreateSkill(ownerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Skill created",
		"id":      skill.ID,
	})
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.portfolio.UpdateSkill(id, ownerID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill updated"})
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.portfolio.DeleteSkill(id, ownerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}
