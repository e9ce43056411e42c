package services

import (
	"testing"
	"time"

	"finhub/internal/config"

	"github.com/stretchr/testify/suite"
)

type SessionServiceSuite struct {
	suite.Suite
	service SessionServiceInterface
}

func (s *SessionServiceSuite) SetupTest() {
	s.service = NewSessionService(&config.SessionConfig{
		SigningSecret: []byte("test-signing-secret"),
		Issuer:        "finhub",
		TokenDuration: time.Hour,
	})
}

func TestSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceSuite))
}

func (s *SessionServiceSuite) TestIssueAndValidateToken() {
	token, expiresAt, err := s.service.IssueToken("user-42", "api_key")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal("user-42", claims.UserID)
	s.Equal("api_key", claims.AuthMethod)
	s.Equal("finhub", claims.Issuer)
}

func (s *SessionServiceSuite) TestIssueToken_EmptyUserID() {
	_, _, err := s.service.IssueToken("", "api_key")
	s.Error(err)
}

func (s *SessionServiceSuite) TestIssueToken_DefaultAuthMethod() {
	token, _, err := s.service.IssueToken("user-42", "")
	s.Require().NoError(err)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal("session", claims.AuthMethod)
}

func (s *SessionServiceSuite) TestValidateToken_Empty() {
	_, err := s.service.ValidateToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *SessionServiceSuite) TestValidateToken_Garbage() {
	_, err := s.service.ValidateToken("not.a.token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionServiceSuite) TestValidateToken_Expired() {
	expired := NewSessionService(&config.SessionConfig{
		SigningSecret: []byte("test-signing-secret"),
		Issuer:        "finhub",
		TokenDuration: -time.Hour,
	})

	token, _, err := expired.IssueToken("user-42", "api_key")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *SessionServiceSuite) TestValidateToken_WrongIssuer() {
	other := NewSessionService(&config.SessionConfig{
		SigningSecret: []byte("test-signing-secret"),
		Issuer:        "someone-else",
		TokenDuration: time.Hour,
	})

	token, _, err := other.IssueToken("user-42", "api_key")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *SessionServiceSuite) TestValidateToken_WrongSecret() {
	other := NewSessionService(&config.SessionConfig{
		SigningSecret: []byte("a-different-secret"),
		Issuer:        "finhub",
		TokenDuration: time.Hour,
	})

	token, _, err := other.IssueToken("user-42", "api_key")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionServiceSuite) TestExtractTokenFromHeader() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc123")
	s.Require().NoError(err)
	s.Equal("abc123", token)

	token, err = s.service.ExtractTokenFromHeader("bearer abc123")
	s.Require().NoError(err)
	s.Equal("abc123", token)

	_, err = s.service.ExtractTokenFromHeader("")
	s.ErrorIs(err, ErrInvalidAuthHeader)

	_, err = s.service.ExtractTokenFromHeader("Basic abc123")
	s.ErrorIs(err, ErrInvalidAuthHeader)

	_, err = s.service.ExtractTokenFromHeader("Bearer ")
	s.ErrorIs(err, ErrInvalidAuthHeader)
}

func (s *SessionServiceSuite) TestAuthInfoProjection() {
	token, _, err := s.service.IssueToken("user-42", "api_key")
	s.Require().NoError(err)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)

	authInfo := s.service.AuthInfo(claims)
	s.Require().NotNil(authInfo)
	s.Equal("user-42", authInfo.AuthenticatedUserID)
	s.Equal("api_key", authInfo.AuthMethod)
	s.WithinDuration(time.Now(), authInfo.AuthenticatedAt, 5*time.Second)

	s.Nil(s.service.AuthInfo(nil))
}
