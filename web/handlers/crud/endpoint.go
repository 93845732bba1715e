// Package crud serves one registry over HTTP.
package crud

import (
	"net/http"

	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/registry"
	"bizdesk.app/bizdesk/web/common"
	"github.com/gin-gonic/gin"
)

type Endpoint[T registry.Entity] struct {
	Base     *common.Handler
	Registry *registry.Registry[T]
	// Totals, when set, is added to list responses.
	Totals func([]T) any
}

func New[T registry.Entity](base *common.Handler, r *registry.Registry[T]) *Endpoint[T] {
	return &Endpoint[T]{Base: base, Registry: r}
}

// Register mounts list, draft, get, create, update and delete under path.
func (ep *Endpoint[T]) Register(r *gin.RouterGroup, path string) {
	r.GET(path, ep.List)
	r.GET(path+"/draft", ep.Draft)
	r.GET(path+"/:id", ep.Get)
	r.POST(path, ep.Create)
	r.PUT(path+"/:id", ep.Update)
	r.DELETE(path+"/:id", ep.Delete)
}

func (ep *Endpoint[T]) name() string {
	return ep.Registry.Name()
}

func (ep *Endpoint[T]) List(c *gin.Context) {
	items, err := ep.Registry.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpLoad, err)
		return
	}

	resp := common.NewSearchResponse(items, int64(len(items)))
	if ep.Totals != nil {
		resp.WithTotals(ep.Totals(items))
	}
	c.JSON(http.StatusOK, resp)
}

func (ep *Endpoint[T]) mutation(data any, items []T) *common.MutationResponse {
	resp := common.NewMutationResponse(data, items)
	if ep.Totals != nil {
		resp.WithTotals(ep.Totals(items))
	}
	return resp
}

func (ep *Endpoint[T]) Get(c *gin.Context) {
	id, ok := ep.Base.ParseID(c)
	if !ok {
		return
	}

	row, err := ep.Registry.Get(c.Request.Context(), id)
	if err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpLoad, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(row))
}

// Draft returns a blank record with the form defaults filled in.
func (ep *Endpoint[T]) Draft(c *gin.Context) {
	form := registry.NewForm(ep.Registry)
	form.OpenCreate()
	c.JSON(http.StatusOK, common.NewSuccessResponse(*form.Draft()))
}

func (ep *Endpoint[T]) Create(c *gin.Context) {
	var draft T
	if err := c.ShouldBindJSON(&draft); err != nil {
		ep.Base.BadRequest(c, common.FormatBindingError(err))
		return
	}

	form := registry.NewForm(ep.Registry)
	form.OpenCreate()
	*form.Draft() = draft

	ep.Submit(c, form, http.StatusCreated)
}

func (ep *Endpoint[T]) Update(c *gin.Context) {
	id, ok := ep.Base.ParseID(c)
	if !ok {
		return
	}

	var draft T
	if err := c.ShouldBindJSON(&draft); err != nil {
		ep.Base.BadRequest(c, common.FormatBindingError(err))
		return
	}

	form := registry.NewForm(ep.Registry)
	if err := form.OpenEdit(c.Request.Context(), id); err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpSave, err)
		return
	}
	// full replace: the body is the whole record
	*form.Draft() = draft

	ep.Submit(c, form, http.StatusOK)
}

// Submit saves an open form and answers with the record and the refreshed list.
func (ep *Endpoint[T]) Submit(c *gin.Context, form *registry.Form[T], status int) {
	res, err := form.Submit(c.Request.Context(), c.Query("q"))
	if err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpSave, err)
		return
	}
	c.JSON(status, ep.mutation(res.Saved, res.Items))
}

// Delete requires ?confirm=true; nothing reaches the store otherwise.
func (ep *Endpoint[T]) Delete(c *gin.Context) {
	id, ok := ep.Base.ParseID(c)
	if !ok {
		return
	}
	if c.Query("confirm") != "true" {
		ep.Base.BadRequest(c, ep.Base.Catalog.ConfirmDelete(ep.name()))
		return
	}

	ctx := c.Request.Context()
	if err := ep.Registry.Delete(ctx, id); err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpDelete, err)
		return
	}

	items, err := ep.Registry.List(ctx, c.Query("q"))
	if err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpLoad, err)
		return
	}
	c.JSON(http.StatusOK, ep.mutation(nil, items))
}

func (ep *Endpoint[T]) Options(c *gin.Context) {
	opts, err := ep.Registry.Options(c.Request.Context())
	if err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpLoad, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(opts))
}
