package dto

import "time"

// IssueSessionRequest requests a session token for the secured connector
// variant. There is no user store; the caller asserts its identity and the
// deployment's signing secret gates who can mint tokens.
type IssueSessionRequest struct {
	UserID     string `json:"user_id" validate:"required,min=1,max=128"`
	AuthMethod string `json:"auth_method" validate:"omitempty,oneof=api_key session_token"`
}

// SessionResponse carries an issued session token
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
