package middleware

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message)
				return
			}
			// Never expose internal error details to clients. Log the real
			// error server-side and send a generic message.
			requestID, _ := c.Get("RequestID")
			logger.Log.Error("unhandled request error", "error", err, "request_id", requestID)
			response.Error(c, http.StatusInternalServerError, "Ocorreu um erro inesperado. Tente novamente mais tarde.")
		}
	}
}
