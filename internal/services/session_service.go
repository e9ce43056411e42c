package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finhub/internal/config"
	"finhub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// SessionService issues and validates the HMAC-signed session tokens the
// secured connector variant requires. Sessions exist so authInfo can be
// stamped onto responses; there is no user store behind them.
type SessionService struct {
	config.SessionConfig
}

// NewSessionService creates a new session service from session configuration
func NewSessionService(sessionConfig *config.SessionConfig) SessionServiceInterface {
	return &SessionService{
		SessionConfig: *sessionConfig,
	}
}

// IssueToken generates a signed session token for a user
func (ss *SessionService) IssueToken(userID, authMethod string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("user ID cannot be empty")
	}
	if authMethod == "" {
		authMethod = "session"
	}

	now := time.Now()
	expiresAt := now.Add(ss.TokenDuration)

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ss.Issuer,
			Subject:   userID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		UserID:     userID,
		AuthMethod: authMethod,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ss.SigningSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates and parses a session token
func (ss *SessionService) ValidateToken(tokenString string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, ss.keyFunc)
	if err != nil {
		return nil, ss.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Issuer != ss.Issuer {
		return nil, ErrInvalidIssuer
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the session token from the Authorization header
func (ss *SessionService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// AuthInfo projects validated claims into the connector authInfo block
func (ss *SessionService) AuthInfo(claims *models.SessionClaims) *models.AuthInfo {
	if claims == nil {
		return nil
	}

	authenticatedAt := time.Now()
	if claims.IssuedAt != nil {
		authenticatedAt = claims.IssuedAt.Time
	}

	return &models.AuthInfo{
		AuthenticatedUserID: claims.UserID,
		AuthenticatedAt:     authenticatedAt,
		AuthMethod:          claims.AuthMethod,
	}
}

func (ss *SessionService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(ss.SigningSecret), nil
}

func (ss *SessionService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
