package dashboard

import (
	"net/http"

	"bizdesk.app/bizdesk/core/dashboard"
	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/web/common"
	"github.com/gin-gonic/gin"
)

const entity = "dashboard"

type Endpoint struct {
	Base       *common.Handler
	Aggregator *dashboard.Aggregator
}

func Register(r *gin.RouterGroup, base *common.Handler, aggregator *dashboard.Aggregator) {
	endpoint := &Endpoint{Base: base, Aggregator: aggregator}
	r.GET("/dashboard", endpoint.Summary)
}

func (ep *Endpoint) Summary(c *gin.Context) {
	summary, err := ep.Aggregator.Summary(c.Request.Context())
	if err != nil {
		ep.Base.Fail(c, entity, locale.OpLoad, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(summary))
}
