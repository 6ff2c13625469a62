package usecasecontract

import (
	"context"

	"github.com/playtube-app/playtube/internal/domain/entity"
)

// AvatarUpload carries the image files accompanying a register request.
type AvatarUpload struct {
	Avatar         []byte
	AvatarType     string
	CoverImage     []byte
	CoverImageType string
}

// IUserUseCase covers registration, login, session rotation, and profile
// reads.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, fullname, password string, upload *AvatarUpload) (*entity.User, error)
	Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshSession(ctx context.Context, refreshToken string) (string, string, error)
	GetByID(ctx context.Context, userID string) (*entity.User, error)
}
