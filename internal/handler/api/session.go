package api

import (
	"net/http"

	resdto "stayquote/internal/handler/dto/response"
	"stayquote/internal/handler/httperr"
	"stayquote/internal/pkg/clock"
	"stayquote/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	tokens *session.Service
	clock  clock.Clock
}

func NewSessionHandler(tokens *session.Service, clock clock.Clock) *SessionHandler {
	return &SessionHandler{
		tokens: tokens,
		clock:  clock,
	}
}

// @Summary Start guest session
// @Description Issue an anonymous short-lived session token for the booking flow
// @Tags sessions
// @Produce json
// @Success 201 {object} resdto.GuestSessionResponse
// @Failure 500 {object} map[string]string
// @Router /sessions/guest [post]
func (h *SessionHandler) CreateGuestSession(c *gin.Context) {
	sessionID := uuid.New()

	token, expiresAt, err := h.tokens.GenerateToken(sessionID, h.clock.Now())
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.GuestSessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
