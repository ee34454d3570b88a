package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Session reports the gated identity back to the admin UI. Reaching this
// handler means both the token middleware and the access gate passed.
func Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"uid":   c.GetString("firebase_uid"),
		"email": c.GetString("email"),
		"admin": true,
	})
}

func Register(r gin.IRouter) {
	r.GET("/session", Session)
}
