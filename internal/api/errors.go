package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONDetail writes the {"detail": ...} error body. Error messages are
// returned verbatim; nothing is sanitized before it reaches the client.
func JSONDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

func MissingUsername(c *gin.Context) {
	JSONDetail(c, http.StatusBadRequest, "Username parameter is required")
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
}

func InternalServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
