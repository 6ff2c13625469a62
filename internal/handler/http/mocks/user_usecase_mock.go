package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/playtube-app/playtube/internal/domain/entity"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface.
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister bool
	ShouldFailLogin    bool
	ShouldFailLogout   bool
	ShouldFailRefresh  bool
	ShouldFailGetByID  bool

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Username:  "testuser",
			Email:     "test@example.com",
			Fullname:  "Test User",
			CreatedAt: time.Now(),
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, fullname, password string, upload *usecasecontract.AvatarUpload) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, errors.New("user creation failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", errors.New("login failed")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if m.ShouldFailLogout {
		return errors.New("logout failed")
	}
	return nil
}

func (m *MockUserUsecase) RefreshSession(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefresh {
		return "", "", errors.New("refresh failed")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("user not found")
	}
	return &m.MockUser, nil
}
