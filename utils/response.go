package utils

import "github.com/gin-gonic/gin"

// JSONError writes the {"error": message} envelope every non-2xx response uses.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONMessage writes a simple acknowledgement payload.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
