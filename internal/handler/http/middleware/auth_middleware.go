package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/handler/http/dto"
	"github.com/playtube-app/playtube/internal/usecase"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Response{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		Success:    false,
	})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleWare verifies the Bearer access token, checks the account still
// exists, and stores the user id in the request context under "userID".
func AuthMiddleWare(jwtService usecase.JWTService, userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Authorization header missing or malformed")
			return
		}
		claims, err := jwtService.ParseAccessToken(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		if _, err := userUsecase.GetByID(c.Request.Context(), claims.UserID); err != nil {
			abortUnauthorized(c, "User account no longer exists")
			return
		}
		c.Set("userID", claims.UserID)
		c.Next()
	}
}

// OptionalAuth stores the user id when a valid Bearer token is present and
// lets the request through anonymously otherwise. Public endpoints that are
// requester-aware use this.
func OptionalAuth(jwtService usecase.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := jwtService.ParseAccessToken(token); err == nil {
				c.Set("userID", claims.UserID)
			}
		}
		c.Next()
	}
}
