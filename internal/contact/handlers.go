package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the contact-form submission endpoint and the gated inbox
// listing. A nil repository means no database was configured; submissions are
// then refused up front with a static message instead of attempting a call.
type Handler struct {
	repo *MessageRepository
	log  *zap.Logger
}

func NewHandler(repo *MessageRepository, log *zap.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

func (h *Handler) Submit(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact backend is not configured"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error("failed to store contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	h.log.Info("contact message received", zap.String("message_id", msg.ID))
	c.JSON(http.StatusCreated, gin.H{"id": msg.ID, "status": "sent"})
}

// Inbox lists recent messages for the admin panel.
func (h *Handler) Inbox(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact backend is not configured"})
		return
	}

	messages, err := h.repo.ListRecent(c.Request.Context(), 50)
	if err != nil {
		h.log.Error("failed to list contact messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *Handler) RegisterPublic(r gin.IRouter) {
	r.POST("/contact", h.Submit)
}

func (h *Handler) RegisterAdmin(r gin.IRouter) {
	r.GET("/contact/messages", h.Inbox)
}
