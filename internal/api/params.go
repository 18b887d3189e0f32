package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/showfolio/backend/internal/middleware"
)

// pathID parses the {id} path segment. A non-numeric id cannot name any
// record, so it reports 404 rather than 400.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// callerID fetches the authenticated user id set by the auth middleware.
func callerID(c *gin.Context) (uint, bool) {
	id, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return 0, false
	}
	return id, true
}
