package equipment

import (
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/registry"
	"bizdesk.app/bizdesk/web/common"
	"bizdesk.app/bizdesk/web/handlers/crud"
	"github.com/gin-gonic/gin"
)

func Register(r *gin.RouterGroup, base *common.Handler, reg *registry.Registry[models.Equipment]) {
	crud.New(base, reg).Register(r, "/equipment")
}
