package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Code:    CodeInternal,
					Message: "an unexpected error occurred, please try again later",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError translates a service error into a standardized JSON response.
func JSONError(c *gin.Context, err error) {
	code := CodeOf(err)
	GetLogger().Warn("request failed", zap.String("code", code), zap.Error(err))
	c.JSON(HTTPStatus(code), ErrorResponse{
		Success: false,
		Code:    code,
		Message: MessageOf(err),
	})
}
