package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "stayquote/internal/handler/dto/request"
	resdto "stayquote/internal/handler/dto/response"
	"stayquote/internal/handler/httperr"
	"stayquote/internal/handler/middleware"
	"stayquote/internal/pkg/errs"
	"stayquote/internal/usecase/commands"
	"stayquote/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	cmds commands.QuoteCommands
	q    queries.QuoteQueries
}

func NewQuoteHandler(cmds commands.QuoteCommands, q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{cmds: cmds, q: q}
}

// @Summary Create booking quote
// @Description Compute a price breakdown for one or more selected room rates
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQuoteRequest true "Quote request"
// @Success 201 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("session id missing from context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if !req.HasRates() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrNoRates, "At least one room rate is required", nil)
		return
	}

	view, err := h.cmds.CreateQuote(c.Request.Context(), req.ToInput(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoRates):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "At least one room rate is required", nil)
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.Header("Location", "/api/quotes/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromQuoteView(view))
}

// @Summary Get booking quote
// @Description Get a previously issued quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quote id", nil)
		return
	}

	view, err := h.q.GetQuote(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrQuoteNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Quote not found", nil)
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary List session quotes
// @Description List quotes issued to the current guest session, newest first
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200)"
// @Param after query string false "Keyset cursor from a previous page"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("session id missing from context"), "Unauthorized", nil)
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.ListBySession(c.Request.Context(), sessionID, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		default:
			httperr.Internal(c, err)
		}
		return
	}

	resp := gin.H{"quotes": resdto.FromQuoteList(views)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}
