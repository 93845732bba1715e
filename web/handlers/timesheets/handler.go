package timesheets

import (
	"fmt"
	"net/http"
	"time"

	"bizdesk.app/bizdesk/core/ledger"
	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/registry"
	"bizdesk.app/bizdesk/infrastructure/logging"
	"bizdesk.app/bizdesk/web/common"
	"bizdesk.app/bizdesk/web/handlers/crud"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	*crud.Endpoint[models.Timesheet]
}

func Register(r *gin.RouterGroup, base *common.Handler, reg *registry.Registry[models.Timesheet]) {
	endpoint := &Endpoint{crud.New(base, reg)}
	endpoint.Totals = func(list []models.Timesheet) any { return ledger.SumTimesheets(list) }

	r.GET("/timesheets/export", endpoint.Export)
	endpoint.Register(r, "/timesheets")
}

// Export downloads the filtered list as a spreadsheet.
func (ep *Endpoint) Export(c *gin.Context) {
	items, err := ep.Registry.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		ep.Base.Fail(c, ep.Registry.Name(), locale.OpLoad, err)
		return
	}

	filename := fmt.Sprintf("timesheets-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", common.XLSXContentType)
	c.Status(http.StatusOK)
	if err := ledger.ExportTimesheets(c.Writer, items, ep.Base.Catalog); err != nil {
		ep.Base.Logger.Error("export failed", logging.FieldEntity, ep.Registry.Name(), logging.FieldError, err.Error())
	}
}
