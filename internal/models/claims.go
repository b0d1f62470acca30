package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the token payload issued by the identity provider. This service
// only verifies tokens, it never mints them.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
