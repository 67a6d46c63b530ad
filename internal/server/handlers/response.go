package handlers

import "github.com/gin-gonic/gin"

// errorResponse is the single error shape for every failing endpoint:
// validation failures carry a descriptive message, store failures carry the
// raw driver error.
func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}

func messageResponse(message string) gin.H {
	return gin.H{"message": message}
}
