package common

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bizdesk.app/bizdesk/core"
	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/receipt"
	"bizdesk.app/bizdesk/infrastructure/communication"
	"bizdesk.app/bizdesk/infrastructure/logging"
	"github.com/gin-gonic/gin"
)

// Handler is shared by every endpoint: it turns errors into responses.
type Handler struct {
	Catalog  *locale.Catalog
	Logger   *slog.Logger
	Notifier communication.Notifier
}

func NewHandler(catalog *locale.Catalog, logger *slog.Logger, notifier communication.Notifier) *Handler {
	if notifier == nil {
		notifier = communication.Noop{}
	}
	return &Handler{
		Catalog:  catalog,
		Logger:   logging.WithComponent(logger, logging.ComponentHTTP),
		Notifier: notifier,
	}
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, receipt.ErrLoginRequired):
		return http.StatusUnauthorized
	case core.IsValidation(err):
		return http.StatusBadRequest
	case core.IsNotFound(err):
		return http.StatusNotFound
	case core.IsRemote(err):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Message describes err for the user in the configured locale.
func (h *Handler) Message(entity string, op locale.Operation, err error) string {
	switch {
	case errors.Is(err, receipt.ErrLoginRequired):
		return h.Catalog.Message(locale.MsgLoginRequired)
	case errors.Is(err, receipt.ErrNotImage):
		return h.Catalog.Message(locale.MsgInvalidImage)
	case errors.Is(err, receipt.ErrTooLarge):
		return h.Catalog.Message(locale.MsgImageTooLarge)
	}
	return h.Catalog.Describe(entity, op) + ": " + err.Error()
}

// Fail logs err, reports remote failures and writes the error response.
func (h *Handler) Fail(c *gin.Context, entity string, op locale.Operation, err error) {
	status := StatusFor(err)
	msg := h.Message(entity, op, err)

	args := []any{
		logging.FieldEntity, entity,
		logging.FieldOperation, string(op),
		logging.FieldStatusCode, status,
		logging.FieldError, err.Error(),
	}
	if id := c.Param("id"); id != "" {
		args = append(args, logging.FieldID, id)
	}
	h.Logger.Error("request failed", args...)

	if core.IsRemote(err) {
		h.notify(c.Request.Context(), msg)
	}

	resp := NewErrorResponse(msg)
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = ve.Fields
	}
	c.AbortWithStatusJSON(status, resp)
}

func (h *Handler) notify(ctx context.Context, msg string) {
	if err := h.Notifier.Error(context.WithoutCancel(ctx), msg); err != nil {
		h.Logger.Warn("notification failed", logging.FieldError, err.Error())
	}
}

// BadRequest answers 400 for input that could not be decoded.
func (h *Handler) BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, NewErrorResponse(message))
}

// ParseID reads the :id path parameter.
func (h *Handler) ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		h.BadRequest(c, h.Catalog.Message(locale.MsgInvalidID))
		return 0, false
	}
	return uint(id), true
}
