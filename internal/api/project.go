package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showfolio/backend/internal/service"
	"github.com/showfolio/backend/internal/types"
)

// ProjectHandler serves the owner-scoped project endpoints.
type ProjectHandler struct {
	portfolio *service.PortfolioService
}

func NewProjectHandler(portfolio *service.PortfolioService) *ProjectHandler {
	return &ProjectHandler{portfolio: portfolio}
}

func (h *ProjectHandler) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	projects, err := h.portfolio.ListProjects(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req types.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and description required"})
		return
	}

	project, err := h.portfolio.CreateProject(ownerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created",
		"id":      project.ID,
	})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.portfolio.UpdateProject(id, ownerID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.portfolio.DeleteProject(id, ownerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
