package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks flat JSON: success responses are the payload itself and
// every failure is `{"error": "<message>"}`. Clients depend on these exact
// shapes.

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondOK sends a 200 OK response with the payload as the body
func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// RespondBadRequest sends a 400 Bad Request response with an error message
func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// RespondInternalError sends a 500 Internal Server Error response.
// The message should be generic; internals are never leaked to clients.
func RespondInternalError(c *gin.Context, message string) {
	if message == "" {
		message = "An internal server error occurred"
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
