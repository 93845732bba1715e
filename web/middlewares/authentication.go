package middlewares

import (
	"net/http"
	"strings"

	"bizdesk.app/bizdesk/security"
	"bizdesk.app/bizdesk/web/common"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func tokenFromRequest(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		cookie, err := c.Cookie(cookieName)
		if err != nil {
			return ""
		}
		return cookie
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authentication checks for a valid Bearer token or session cookie
func Authentication(jwtSecret []byte, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c, cookieName)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("missing token"))
			return
		}

		identity, err := security.ParseIdentityToken(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse(security.ErrInvalidToken.Error()))
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity set by Authentication.
func IdentityFrom(c *gin.Context) (*security.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*security.Identity)
	return identity, ok && identity != nil
}
