package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/playtube-app/playtube/internal/domain/contract"
	"github.com/playtube-app/playtube/internal/domain/entity"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// ErrMissingField is returned when a register request omits a required field.
var ErrMissingField = errors.New("username, email, fullname and password are all required")

// ErrMissingAvatar is returned when a register request has no avatar image.
var ErrMissingAvatar = errors.New("avatar file is required")

// ErrInvalidCredentials is returned for a bad username/email or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidRefreshToken is returned when a refresh token fails verification
// or does not match the stored one.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// UserUsecase handles registration, login, and session rotation.
type UserUsecase struct {
	users     contract.IUserRepository
	hasher    contract.IHasher
	jwt       JWTService
	storage   contract.IMediaStorage
	ids       contract.IUUIDGenerator
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

// NewUserUsecase creates and returns a new UserUsecase instance.
func NewUserUsecase(users contract.IUserRepository, hasher contract.IHasher, jwt JWTService, storage contract.IMediaStorage, ids contract.IUUIDGenerator, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *UserUsecase {
	return &UserUsecase{
		users:     users,
		hasher:    hasher,
		jwt:       jwt,
		storage:   storage,
		ids:       ids,
		validator: validator,
		logger:    logger,
	}
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register creates a user after validating fields, storing the avatar and
// optional cover image, and hashing the password.
func (u *UserUsecase) Register(ctx context.Context, username, email, fullname, password string, upload *usecasecontract.AvatarUpload) (*entity.User, error) {
	for _, field := range []string{username, email, fullname, password} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingField
		}
	}
	if err := u.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := u.validator.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	existing, err := u.users.GetByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, contract.ErrUserAlreadyExists
	}

	if upload == nil || len(upload.Avatar) == 0 {
		return nil, ErrMissingAvatar
	}

	id := u.ids.NewUUID()
	avatar, err := u.storage.Store(ctx, path.Join("avatars", id+extFromContentType(upload.AvatarType)), bytes.NewReader(upload.Avatar), int64(len(upload.Avatar)), upload.AvatarType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	user := &entity.User{
		ID:       id,
		Username: strings.ToLower(username),
		Email:    strings.ToLower(email),
		Fullname: fullname,
		Avatar:   avatar.URL,
	}
	if len(upload.CoverImage) > 0 {
		cover, err := u.storage.Store(ctx, path.Join("covers", id+extFromContentType(upload.CoverImageType)), bytes.NewReader(upload.CoverImage), int64(len(upload.CoverImage)), upload.CoverImageType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload cover image: %w", err)
		}
		user.CoverImage = cover.URL
	}

	user.PasswordHash, err = u.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	u.logger.Infof("registered user %s (%s)", user.Username, user.ID)
	return user, nil
}

// Login checks credentials by username or email and issues a fresh token
// pair, persisting the refresh token on the user document.
func (u *UserUsecase) Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, string, string, error) {
	if usernameOrEmail == "" || password == "" {
		return nil, "", "", ErrInvalidCredentials
	}
	lookup := strings.ToLower(usernameOrEmail)
	user, err := u.users.GetByUsernameOrEmail(ctx, lookup, lookup)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", fmt.Errorf("failed to look up user: %w", err)
	}
	if err := u.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := u.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

// Logout invalidates the session matching the presented refresh token.
func (u *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := u.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	if err := u.users.UpdateRefreshToken(ctx, claims.UserID, ""); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// RefreshSession rotates the token pair when the presented refresh token
// matches the stored one.
func (u *UserUsecase) RefreshSession(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := u.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidRefreshToken
	}
	user, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return "", "", ErrInvalidRefreshToken
	}
	return u.issueTokens(ctx, user.ID)
}

// GetByID fetches one user's profile.
func (u *UserUsecase) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, ErrInvalidTarget
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (u *UserUsecase) issueTokens(ctx context.Context, userID string) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := u.jwt.GenerateRefreshToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := u.users.UpdateRefreshToken(ctx, userID, refresh); err != nil {
		return "", "", fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return access, refresh, nil
}
