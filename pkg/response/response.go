package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope returned by every mutation and every error.
// Listing and detail endpoints return the raw entity instead (see Data).
type Response struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Data sends a raw entity or sequence of entities with 200.
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Message: message, Success: true})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, Response{Message: message, Success: true})
}

// Error sends a failure envelope with the given status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{Message: message, Success: false})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
