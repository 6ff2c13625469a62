package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated user identity extracted from a JWT.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}
