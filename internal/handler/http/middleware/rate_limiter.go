package middleware

import (
	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/handler/http/dto"
)

// RateLimiter wraps a tollbooth limiter as Gin middleware.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request)
		if httpError != nil {
			c.AbortWithStatusJSON(httpError.StatusCode, dto.Response{
				StatusCode: httpError.StatusCode,
				Message:    lmt.GetMessage(),
				Success:    false,
			})
			return
		}
		c.Next()
	}
}
