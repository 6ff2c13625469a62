package dto

// LoginRequest is accepted at the login endpoint. Either username or email
// identifies the account.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is accepted at the refresh and logout endpoints.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ContentRequest is the shared body for comments and tweets.
type ContentRequest struct {
	Content string `json:"content" binding:"required"`
}

// VideoUpdateRequest carries the editable text fields of a video.
type VideoUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PublishStatusRequest flips a video's visibility.
type PublishStatusRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

// PlaylistRequest carries a playlist's editable fields.
type PlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}
