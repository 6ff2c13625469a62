package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playtube-app/playtube/internal/handler/http/dto"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

// UserHandler exposes registration, login, session rotation, and profile
// reads.
type UserHandler struct {
	users usecasecontract.IUserUseCase
}

func NewUserHandler(users usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{users: users}
}

func readFormImage(c *gin.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	f, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, header.Header.Get("Content-Type"), nil
}

// Register accepts a multipart form with username/email/fullname/password
// fields, a required avatar image, and an optional coverImage.
func (h *UserHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	fullname := c.PostForm("fullname")
	password := c.PostForm("password")

	upload := &usecasecontract.AvatarUpload{}
	if data, contentType, err := readFormImage(c, "avatar"); err == nil {
		upload.Avatar = data
		upload.AvatarType = contentType
	}
	if data, contentType, err := readFormImage(c, "coverImage"); err == nil {
		upload.CoverImage = data
		upload.CoverImageType = contentType
	}

	user, err := h.users.Register(c.Request.Context(), username, email, fullname, password, upload)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user), "User registered successfully")
}

// Login exchanges credentials for an access/refresh token pair.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	user, accessToken, refreshToken, err := h.users.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "Login successful")
}

// Logout invalidates the session the given refresh token belongs to.
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.users.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, nil, "Logged out successfully")
}

// RefreshToken rotates the session: the presented refresh token must match
// the stored one and both tokens are reissued.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	accessToken, refreshToken, err := h.users.RefreshSession(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "Session refreshed")
}

// GetProfile returns a user's public profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user), "User fetched")
}

// GetCurrentUser returns the authenticated caller's profile.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := AuthenticatedUser(c)
	if !ok {
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user), "Current user fetched")
}
