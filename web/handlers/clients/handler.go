package clients

import (
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/registry"
	"bizdesk.app/bizdesk/web/common"
	"bizdesk.app/bizdesk/web/handlers/crud"
	"github.com/gin-gonic/gin"
)

func Register(r *gin.RouterGroup, base *common.Handler, reg *registry.Registry[models.Client]) {
	endpoint := crud.New(base, reg)
	r.GET("/clients/options", endpoint.Options)
	endpoint.Register(r, "/clients")
}
