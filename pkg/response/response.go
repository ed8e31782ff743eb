package response

import "github.com/gin-gonic/gin"

// ErrorResponse is the standardized error body across the API.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Fail writes the standardized error body with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Status: status, Message: message})
}
