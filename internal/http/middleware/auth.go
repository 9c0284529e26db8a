// README: Firebase ID-token auth middleware and caller helpers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studytrip/internal/infra"
)

const callerKey = "caller"

// Auth verifies a "Bearer <id token>" header with verifier and stores the
// caller on the context. A nil verifier disables auth.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		caller, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil || caller == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerUID returns the authenticated uid, or "" when the request is anonymous.
func CallerUID(c *gin.Context) string {
	if v, ok := c.Get(callerKey); ok {
		if caller, ok := v.(*infra.Caller); ok {
			return caller.UID
		}
	}
	return ""
}

// ClientKey identifies the caller for quotas: the uid when authenticated,
// otherwise the client IP.
func ClientKey(c *gin.Context) string {
	if uid := CallerUID(c); uid != "" {
		return "uid:" + uid
	}
	return "ip:" + c.ClientIP()
}
