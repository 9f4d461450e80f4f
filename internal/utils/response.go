package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope every endpoint returns. Data is
// omitted on failure paths and on delete.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// DeletedResponse confirms a delete without a data payload.
func DeletedResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: message,
	})
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found")
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, message)
}

// ValidationErrorResponse collapses field-level errors into the single
// message string the envelope carries.
func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	messages := make([]string, 0, len(errors))
	for _, e := range errors {
		messages = append(messages, e.Message)
	}

	message := strings.Join(messages, "; ")
	if message == "" {
		message = "The given data was invalid"
	}

	ErrorResponse(c, http.StatusUnprocessableEntity, message)
}
