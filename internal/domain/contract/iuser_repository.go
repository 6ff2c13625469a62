package contract

import (
	"context"
	"errors"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// ErrUserNotFound is returned when a user id does not resolve.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned when a register collides on username or
// email.
var ErrUserAlreadyExists = errors.New("user with that username or email already exists")

// IUserRepository defines the interface for user data persistence.
type IUserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, userID string) (*entity.User, error)
	// GetByUsernameOrEmail matches either field; login accepts both.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error
}
