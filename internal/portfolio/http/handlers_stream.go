package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plussdev/portfolio-backend/internal/i18n"
	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
)

// StreamPortfolio streams live card sets to public viewers using Server-Sent
// Events (SSE). Every event carries the complete current set, not a diff;
// clients replace their whole list on each message.
func (h *Handler) StreamPortfolio(c *gin.Context) {
	lang := i18n.Parse(c.Query("lang"))

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	updates, release := h.mirror.Subscribe()
	defer release()

	ctx := c.Request.Context()

	// Keep-alive pings so intermediaries do not drop the idle connection.
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case cards, ok := <-updates:
			if !ok {
				return
			}
			localized := make([]domain.LocalizedCard, 0, len(cards))
			for _, card := range cards {
				localized = append(localized, card.Localized(lang))
			}
			eventData, _ := json.Marshal(LocalizedListResponse{Language: string(lang), Cards: localized})
			fmt.Fprintf(c.Writer, "event: cards\ndata: %s\n\n", string(eventData))
			flusher.Flush()
		}
	}
}
