package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plussdev/portfolio-backend/internal/i18n"
)

func ServicesHandler(c *gin.Context) {
	lang := i18n.Parse(c.Query("lang"))
	c.JSON(http.StatusOK, gin.H{"language": lang, "services": Services(lang)})
}

func PacksHandler(c *gin.Context) {
	lang := i18n.Parse(c.Query("lang"))
	c.JSON(http.StatusOK, gin.H{"language": lang, "packs": Packs(lang)})
}

func Register(r gin.IRouter) {
	r.GET("/content/services", ServicesHandler)
	r.GET("/content/packs", PacksHandler)
}
