package auth

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Gate restricts admin routes to the single configured operator. The token
// middleware already authenticated the caller; the gate compares the account
// address against the one allowed value. On mismatch the account's refresh
// tokens are revoked so the client session dies immediately, and the request
// is rejected with an access-denied condition. The gate never grants partial
// access.
func Gate(authClient *auth.Client, adminEmail string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		uid := c.GetString("firebase_uid")

		if adminEmail == "" || email != adminEmail {
			if authClient != nil && uid != "" {
				if err := authClient.RevokeRefreshTokens(c.Request.Context(), uid); err != nil {
					log.Warn("failed to revoke session for denied account",
						zap.String("uid", uid), zap.Error(err))
				}
			}
			log.Warn("admin access denied", zap.String("email", email))
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied: only the admin can log in"})
			c.Abort()
			return
		}

		c.Next()
	}
}
