package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by a dashboard session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	AuthMethod string `json:"auth_method"`
}
