// Package prefs exposes the admin UI's persisted preferences (language and
// theme) over the gated API, backed by the kv store instead of ambient
// browser-local state.
package prefs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/internal/kv"
)

// allowed preference keys and their accepted values.
var allowed = map[string]map[string]bool{
	"language": {"en": true, "fr": true},
	"theme":    {"light": true, "dark": true},
}

type Handler struct {
	store kv.Store
	log   *zap.Logger
}

func NewHandler(store kv.Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

type setRequest struct {
	Value string `json:"value"`
}

func (h *Handler) Get(c *gin.Context) {
	key := c.Param("key")
	if _, ok := allowed[key]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown preference"})
		return
	}

	value, err := h.store.Get(c.Request.Context(), storageKey(c, key))
	if errors.Is(err, kv.ErrKeyNotFound) {
		c.JSON(http.StatusOK, gin.H{"key": key, "value": ""})
		return
	}
	if err != nil {
		h.log.Error("failed to read preference", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

func (h *Handler) Set(c *gin.Context) {
	key := c.Param("key")
	values, ok := allowed[key]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown preference"})
		return
	}

	var req setRequest
	if err := c.ShouldBindJSON(&req); err != nil || !values[req.Value] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preference value"})
		return
	}

	if err := h.store.Set(c.Request.Context(), storageKey(c, key), req.Value); err != nil {
		h.log.Error("failed to save preference", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}

// storageKey namespaces a preference under the authenticated account.
func storageKey(c *gin.Context, key string) string {
	return c.GetString("firebase_uid") + ":" + key
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/prefs/:key", h.Get)
	r.PUT("/prefs/:key", h.Set)
}
