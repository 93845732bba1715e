// Package web assembles the HTTP API.
package web

import (
	"log/slog"
	"net/http"

	"bizdesk.app/bizdesk/core/dashboard"
	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/receipt"
	"bizdesk.app/bizdesk/core/registries"
	"bizdesk.app/bizdesk/infrastructure/communication"
	"bizdesk.app/bizdesk/web/common"
	"bizdesk.app/bizdesk/web/handlers/clients"
	dashboardhandler "bizdesk.app/bizdesk/web/handlers/dashboard"
	"bizdesk.app/bizdesk/web/handlers/equipment"
	"bizdesk.app/bizdesk/web/handlers/expenses"
	"bizdesk.app/bizdesk/web/handlers/projects"
	"bizdesk.app/bizdesk/web/handlers/session"
	"bizdesk.app/bizdesk/web/handlers/timesheets"
	"bizdesk.app/bizdesk/web/middlewares"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Registries    *registries.Set
	Dashboard     *dashboard.Aggregator
	Attacher      *receipt.Attacher
	Catalog       *locale.Catalog
	Logger        *slog.Logger
	Notifier      communication.Notifier
	SigningSecret []byte
	SessionCookie string
	// ReceiptDir, when set, is served under /receipts.
	ReceiptDir string
}

func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(deps.Logger))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	if deps.ReceiptDir != "" {
		r.Static("/receipts", deps.ReceiptDir)
	}

	base := common.NewHandler(deps.Catalog, deps.Logger, deps.Notifier)

	api := r.Group("/api")
	session.Register(api, base, deps.SessionCookie)

	protected := api.Group("")
	protected.Use(middlewares.Authentication(deps.SigningSecret, deps.SessionCookie))
	{
		clients.Register(protected, base, deps.Registries.Clients)
		projects.Register(protected, base, deps.Registries.Projects)
		equipment.Register(protected, base, deps.Registries.Equipment)
		expenses.Register(protected, base, deps.Registries.Expenses, deps.Attacher)
		timesheets.Register(protected, base, deps.Registries.Timesheets)
		dashboardhandler.Register(protected, base, deps.Dashboard)
	}

	return r
}
