package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/internal/i18n"
	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
	"github.com/plussdev/portfolio-backend/internal/portfolio/service"
)

type Handler struct {
	mirror    *service.Mirror
	editor    *service.Editor
	reorderer *service.Reorderer
	log       *zap.Logger
}

func NewHandler(mirror *service.Mirror, editor *service.Editor, reorderer *service.Reorderer, log *zap.Logger) *Handler {
	return &Handler{
		mirror:    mirror,
		editor:    editor,
		reorderer: reorderer,
		log:       log,
	}
}

// ListPortfolio serves the public, localized card list from the mirror's
// snapshot. The mirror fails open, so this endpoint never errors; at worst it
// returns an empty list.
func (h *Handler) ListPortfolio(c *gin.Context) {
	lang := i18n.Parse(c.Query("lang"))

	cards := h.mirror.Cards()
	out := make([]domain.LocalizedCard, 0, len(cards))
	for _, card := range cards {
		out = append(out, card.Localized(lang))
	}

	c.JSON(http.StatusOK, LocalizedListResponse{Language: string(lang), Cards: out})
}

// ListCards serves the raw bilingual records for the admin panel.
func (h *Handler) ListCards(c *gin.Context) {
	cards, err := h.editor.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CardListResponse{Cards: cards})
}

func (h *Handler) CreateCard(c *gin.Context) {
	var form domain.CardForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	card, err := h.editor.Create(c.Request.Context(), form)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *Handler) UpdateCard(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card ID is required"})
		return
	}

	var form domain.CardForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.editor.Update(c.Request.Context(), id, form); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) DeleteCard(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card ID is required"})
		return
	}

	if err := h.editor.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reorder moves one card to a new visual position and rewrites the sortOrder
// sequence. Overlapping reorders are rejected while one is in flight.
func (h *Handler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	applied, err := h.reorderer.Reorder(c.Request.Context(), req.From, req.To)
	if err != nil {
		// A mid-sequence failure has already renumbered `applied` records.
		// Report it so the operator knows the list may be partially moved.
		if applied > 0 {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "reorder failed part-way through",
				"applied": applied,
			})
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReorderResponse{Applied: applied})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var missing *domain.MissingFieldError
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "backend is not configured"})
	case errors.Is(err, domain.ErrCardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
	case errors.Is(err, domain.ErrReorderInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrIndexOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error("portfolio request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
