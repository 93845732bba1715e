package session

import (
	"net/http"

	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/web/common"
	"github.com/gin-gonic/gin"
)

// Register mounts the sign-out route. It sits outside the authenticated group
// so an expired session can still be cleared.
func Register(r *gin.RouterGroup, base *common.Handler, cookieName string) {
	r.POST("/session/signout", func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
			"message": base.Catalog.Message(locale.MsgSignedOut),
		}))
	})
}
