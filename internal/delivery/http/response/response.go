package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The contact endpoint's wire contract is deliberately small: a success is
// exactly {"success":true} and a failure is exactly {"error":"..."}. Existing
// frontend code matches on these shapes, so no envelope fields are added.

// SuccessBody is the body of every 2xx response.
type SuccessBody struct {
	Success bool `json:"success"`
}

// ErrorBody is the body of every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK sends the fixed success body.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
