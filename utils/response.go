package utils

import "github.com/gin-gonic/gin"

// JSONError writes the uniform error body: a short machine-readable code plus
// a human-readable message.
func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"code": code, "message": message})
}
