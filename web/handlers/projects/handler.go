package projects

import (
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/registry"
	"bizdesk.app/bizdesk/web/common"
	"bizdesk.app/bizdesk/web/handlers/crud"
	"github.com/gin-gonic/gin"
)

func Register(r *gin.RouterGroup, base *common.Handler, reg *registry.Registry[models.Project]) {
	endpoint := crud.New(base, reg)
	r.GET("/projects/options", endpoint.Options)
	endpoint.Register(r, "/projects")
}
