package i18n

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the full translation table for one language so the frontend
// can hydrate its lookup function.
func Handler(c *gin.Context) {
	lang := c.Param("lang")
	if !Valid(lang) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported language"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"strings":  Table(Language(lang)),
	})
}

func Register(r gin.IRouter) {
	r.GET("/i18n/:lang", Handler)
}
