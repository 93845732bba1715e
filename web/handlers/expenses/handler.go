package expenses

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bizdesk.app/bizdesk/core/ledger"
	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/receipt"
	"bizdesk.app/bizdesk/core/registry"
	"bizdesk.app/bizdesk/infrastructure/logging"
	"bizdesk.app/bizdesk/web/common"
	"bizdesk.app/bizdesk/web/handlers/crud"
	"bizdesk.app/bizdesk/web/middlewares"
	"github.com/gin-gonic/gin"
)

const (
	fieldData    = "data"
	fieldReceipt = "receipt"
	fieldRemove  = "remove_receipt"
)

// Payload is the expense body plus the receipt flag the form sends along.
type Payload struct {
	models.Expense
	RemoveReceipt bool `json:"remove_receipt"`
}

type Endpoint struct {
	*crud.Endpoint[models.Expense]
	Attacher *receipt.Attacher
}

func Register(r *gin.RouterGroup, base *common.Handler, reg *registry.Registry[models.Expense], attacher *receipt.Attacher) {
	endpoint := &Endpoint{Endpoint: crud.New(base, reg), Attacher: attacher}
	endpoint.Totals = func(list []models.Expense) any { return ledger.SumExpenses(list) }

	r.GET("/expenses", endpoint.List)
	r.GET("/expenses/draft", endpoint.Draft)
	r.GET("/expenses/export", endpoint.Export)
	r.GET("/expenses/:id", endpoint.Get)
	r.POST("/expenses", endpoint.Create)
	r.POST("/expenses/receipt-preview", endpoint.Preview)
	r.PUT("/expenses/:id", endpoint.Update)
	r.DELETE("/expenses/:id", endpoint.Delete)
}

func (ep *Endpoint) name() string {
	return ep.Registry.Name()
}

func (ep *Endpoint) Create(c *gin.Context) {
	payload, file, ok := ep.bind(c)
	if !ok {
		return
	}

	form := registry.NewForm(ep.Registry)
	form.OpenCreate()
	*form.Draft() = payload.Expense

	if !ep.attach(c, form, nil, file, payload.RemoveReceipt) {
		return
	}
	ep.Submit(c, form, http.StatusCreated)
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, ok := ep.Base.ParseID(c)
	if !ok {
		return
	}
	payload, file, ok := ep.bind(c)
	if !ok {
		return
	}

	form := registry.NewForm(ep.Registry)
	if err := form.OpenEdit(c.Request.Context(), id); err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpSave, err)
		return
	}
	current := form.Draft().ReceiptImage
	*form.Draft() = payload.Expense

	if !ep.attach(c, form, current, file, payload.RemoveReceipt) {
		return
	}
	ep.Submit(c, form, http.StatusOK)
}

// attach stamps the caller's identity on the draft and resolves its receipt.
// The draft is checked first so an invalid expense never uploads anything.
func (ep *Endpoint) attach(c *gin.Context, form *registry.Form[models.Expense], current *string, file *receipt.File, remove bool) bool {
	draft := form.Draft()
	draft.UserID = ""
	if identity, ok := middlewares.IdentityFrom(c); ok {
		draft.UserID = identity.ID
	}
	draft.ReceiptImage = current

	check := *draft
	if err := ep.Registry.Prepare(c.Request.Context(), &check); err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpSave, err)
		return false
	}

	url, err := ep.Attacher.Resolve(c.Request.Context(), draft.UserID, current, file, remove)
	if err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpSave, err)
		return false
	}
	draft.ReceiptImage = url
	return true
}

// bind reads either a JSON body or a multipart form with the JSON under "data".
func (ep *Endpoint) bind(c *gin.Context) (Payload, *receipt.File, bool) {
	var payload Payload

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBindJSON(&payload); err != nil {
			ep.Base.BadRequest(c, common.FormatBindingError(err))
			return payload, nil, false
		}
		payload.ID = 0
		return payload, nil, true
	}

	if err := json.Unmarshal([]byte(c.PostForm(fieldData)), &payload); err != nil {
		ep.Base.BadRequest(c, common.FormatBindingError(err))
		return payload, nil, false
	}
	payload.ID = 0
	if v := c.PostForm(fieldRemove); v != "" {
		payload.RemoveReceipt, _ = strconv.ParseBool(v)
	}

	header, err := c.FormFile(fieldReceipt)
	if err == http.ErrMissingFile {
		return payload, nil, true
	}
	if err != nil {
		ep.Base.BadRequest(c, err.Error())
		return payload, nil, false
	}
	return payload, fileFromHeader(header), true
}

func fileFromHeader(header *multipart.FileHeader) *receipt.File {
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = sniff(header)
	}
	return &receipt.File{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}

func sniff(header *multipart.FileHeader) string {
	f, err := header.Open()
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := io.ReadFull(f, buf)
	return http.DetectContentType(buf[:n])
}

// Preview validates an image and echoes it back as a data URL. Nothing is stored.
func (ep *Endpoint) Preview(c *gin.Context) {
	header, err := c.FormFile(fieldReceipt)
	if err != nil {
		ep.Base.BadRequest(c, ep.Base.Catalog.Message(locale.MsgInvalidImage))
		return
	}
	file := fileFromHeader(header)
	if err := receipt.Validate(file.ContentType, file.Size); err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpLoad, err)
		return
	}

	body, err := file.Open()
	if err != nil {
		ep.Base.BadRequest(c, err.Error())
		return
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, receipt.MaxSize+1))
	if err != nil {
		ep.Base.BadRequest(c, err.Error())
		return
	}
	url, err := receipt.Preview(data, file.ContentType)
	if err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpLoad, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"preview": url}))
}

// Export downloads the filtered list as a spreadsheet.
func (ep *Endpoint) Export(c *gin.Context) {
	items, err := ep.Registry.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		ep.Base.Fail(c, ep.name(), locale.OpLoad, err)
		return
	}

	filename := fmt.Sprintf("expenses-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", common.XLSXContentType)
	c.Status(http.StatusOK)
	if err := ledger.ExportExpenses(c.Writer, items, ep.Base.Catalog); err != nil {
		ep.Base.Logger.Error("export failed", logging.FieldEntity, ep.Registry.Name(), logging.FieldError, err.Error())
	}
}
