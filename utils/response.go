package utils

import "github.com/gin-gonic/gin"

// JSONError writes the error body shape used across the API. message is either
// a string or a field → message map for validation failures.
func JSONError(c *gin.Context, code int, message any) {
	c.JSON(code, gin.H{"error": message})
}
