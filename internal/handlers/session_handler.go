package handlers

import (
	"net/http"

	"finhub/internal/dto"
	apperrors "finhub/internal/errors"
	"finhub/internal/services"

	"github.com/labstack/echo/v4"
)

// SessionHandler issues the session tokens accepted by the secured connector
// variant.
type SessionHandler struct {
	sessionService services.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService services.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// IssueSession handles POST /api/session
func (h *SessionHandler) IssueSession(c echo.Context) error {
	var req dto.IssueSessionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	authMethod := req.AuthMethod
	if authMethod == "" {
		authMethod = "session_token"
	}

	token, expiresAt, err := h.sessionService.IssueToken(req.UserID, authMethod)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, dto.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
