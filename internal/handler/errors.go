package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DevGleb/RealWorldApp/internal/validator"
)

// All error responses share one shape: {"errors": {field: [messages]}}.
// Clients key off the status code; the body is for humans.

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"errors": gin.H{"body": []string{"not found"}},
	})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"errors": gin.H{"body": []string{msg}},
	})
}

func unprocessable(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"errors": validator.FieldErrors(err),
	})
}

func conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{
		"errors": gin.H{"body": []string{msg}},
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"errors": gin.H{"body": []string{"internal server error"}},
	})
}
