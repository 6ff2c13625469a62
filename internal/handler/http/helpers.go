package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/handler/http/dto"
	"github.com/playtube-app/playtube/internal/usecase"
)

// SuccessHandler writes a success envelope.
func SuccessHandler(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, dto.Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// ErrorHandler writes an error envelope.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Response{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	})
}

// HandleUsecaseError maps usecase sentinel errors to HTTP status codes and
// writes the error envelope. Unrecognized errors become a 500.
func HandleUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTargetNotFound),
		errors.Is(err, contract.ErrVideoNotFound),
		errors.Is(err, contract.ErrCommentNotFound),
		errors.Is(err, contract.ErrTweetNotFound),
		errors.Is(err, contract.ErrPlaylistNotFound),
		errors.Is(err, contract.ErrUserNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrInvalidTarget),
		errors.Is(err, usecase.ErrUnsupportedPolarity),
		errors.Is(err, usecase.ErrSelfSubscription),
		errors.Is(err, usecase.ErrMissingContent),
		errors.Is(err, usecase.ErrMissingTitle),
		errors.Is(err, usecase.ErrMissingFile),
		errors.Is(err, usecase.ErrMissingField),
		errors.Is(err, usecase.ErrMissingAvatar),
		errors.Is(err, usecase.ErrMissingPlaylistFields),
		errors.Is(err, usecase.ErrNothingToUpdate):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrNotOwner):
		ErrorHandler(c, http.StatusForbidden, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidRefreshToken):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, contract.ErrUserAlreadyExists),
		errors.Is(err, contract.ErrPlaylistExists):
		ErrorHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, usecase.ErrToggleContention):
		ErrorHandler(c, http.StatusServiceUnavailable, err.Error())
	default:
		// Wrapped storage errors stay server-side; the client only sees a
		// generic message.
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}

// AuthenticatedUser pulls the user id the auth middleware stored. It writes
// a 401 and returns false if the request was not authenticated.
func AuthenticatedUser(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	userIDStr, ok := userID.(string)
	if !ok || userIDStr == "" {
		ErrorHandler(c, http.StatusBadRequest, "Invalid user ID format in token")
		return "", false
	}
	return userIDStr, true
}

// RequesterID returns the authenticated user id or "" for anonymous
// requests, for endpoints that are public but requester-aware.
func RequesterID(c *gin.Context) string {
	if userID, exists := c.Get("userID"); exists {
		if s, ok := userID.(string); ok {
			return s
		}
	}
	return ""
}

// BindAndValidate binds a JSON request body and writes a 400 on failure.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}
