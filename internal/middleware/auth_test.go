package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "finhub/internal/errors"
	"finhub/internal/models"
	"finhub/internal/services"
	"finhub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequireSessionSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	echo           *echo.Echo
	sessionService *service_mocks.MockSessionServiceInterface
}

func (s *RequireSessionSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.sessionService = service_mocks.NewMockSessionServiceInterface(s.ctrl)
}

func (s *RequireSessionSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRequireSessionSuite(t *testing.T) {
	suite.Run(t, new(RequireSessionSuite))
}

func (s *RequireSessionSuite) invoke(authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(RequireSession(s.sessionService)(next)(c))
	return rec
}

func (s *RequireSessionSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func (s *RequireSessionSuite) TestValidToken() {
	claims := &models.SessionClaims{UserID: "user-42", AuthMethod: "api_key"}
	authInfo := &models.AuthInfo{
		AuthenticatedUserID: "user-42",
		AuthenticatedAt:     time.Now(),
		AuthMethod:          "api_key",
	}

	s.sessionService.EXPECT().ExtractTokenFromHeader("Bearer good-token").Return("good-token", nil)
	s.sessionService.EXPECT().ValidateToken("good-token").Return(claims, nil)
	s.sessionService.EXPECT().AuthInfo(claims).Return(authInfo)

	rec := s.invoke("Bearer good-token", func(c echo.Context) error {
		stored, ok := c.Get(AuthInfoContextKey).(*models.AuthInfo)
		s.Require().True(ok)
		s.Equal("user-42", stored.AuthenticatedUserID)
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *RequireSessionSuite) TestMissingHeader() {
	rec := s.invoke("", func(c echo.Context) error {
		s.Fail("next handler must not run")
		return nil
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthMissingToken), s.errorCode(rec))
}

func (s *RequireSessionSuite) TestMalformedHeader() {
	s.sessionService.EXPECT().ExtractTokenFromHeader("Basic abc").
		Return("", services.ErrInvalidAuthHeader)

	rec := s.invoke("Basic abc", func(c echo.Context) error {
		s.Fail("next handler must not run")
		return nil
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *RequireSessionSuite) TestExpiredToken() {
	s.sessionService.EXPECT().ExtractTokenFromHeader("Bearer stale").Return("stale", nil)
	s.sessionService.EXPECT().ValidateToken("stale").Return(nil, services.ErrExpiredToken)

	rec := s.invoke("Bearer stale", func(c echo.Context) error {
		s.Fail("next handler must not run")
		return nil
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthExpiredToken), s.errorCode(rec))
}

func (s *RequireSessionSuite) TestInvalidToken() {
	s.sessionService.EXPECT().ExtractTokenFromHeader("Bearer forged").Return("forged", nil)
	s.sessionService.EXPECT().ValidateToken("forged").Return(nil, services.ErrInvalidToken)

	rec := s.invoke("Bearer forged", func(c echo.Context) error {
		s.Fail("next handler must not run")
		return nil
	})

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthInvalidTokenFormat), s.errorCode(rec))
}
