package entity

import (
	"time"
)

// User represents a registered user in the system. A user also acts as a
// channel: other users subscribe to it and videos are published under it.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	Fullname     string    `bson:"fullname" json:"fullname"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Avatar       string    `bson:"avatar" json:"avatar"`
	CoverImage   string    `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	RefreshToken string    `bson:"refresh_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
