package http

import "github.com/gin-gonic/gin"

// RegisterPublic mounts the read-only portfolio endpoints.
func (h *Handler) RegisterPublic(r gin.IRouter) {
	r.GET("/portfolio", h.ListPortfolio)
	r.GET("/portfolio/stream", h.StreamPortfolio)
}

// RegisterAdmin mounts the gated card-management endpoints.
func (h *Handler) RegisterAdmin(r gin.IRouter) {
	r.GET("/cards", h.ListCards)
	r.POST("/cards", h.CreateCard)
	r.PUT("/cards/:id", h.UpdateCard)
	r.DELETE("/cards/:id", h.DeleteCard)
	r.POST("/cards/reorder", h.Reorder)
}
