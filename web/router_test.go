package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"bizdesk.app/bizdesk/core"
	"bizdesk.app/bizdesk/core/coretest"
	"bizdesk.app/bizdesk/core/dashboard"
	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/receipt"
	"bizdesk.app/bizdesk/core/registries"
	"bizdesk.app/bizdesk/infrastructure/logging"
	"bizdesk.app/bizdesk/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	secret = []byte("0123456789abcdef0123456789abcdef")
	png    = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
)

type fakeStore struct {
	keys []string
	err  error
}

func (s *fakeStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	s.keys = append(s.keys, key)
	if s.err != nil {
		return s.err
	}
	_, err := io.Copy(io.Discard, body)
	return err
}

func (s *fakeStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type testServer struct {
	t     *testing.T
	r     *gin.Engine
	set   *registries.Set
	store *fakeStore
	token string
}

type fakeNotifier struct {
	errors []string
}

func (n *fakeNotifier) Info(ctx context.Context, message string) error {
	return nil
}

func (n *fakeNotifier) Error(ctx context.Context, message string) error {
	n.errors = append(n.errors, message)
	return nil
}

type failingSource struct {
	err error
}

func (s failingSource) CountClients(ctx context.Context) (int64, error) {
	return 0, s.err
}

func (s failingSource) ProjectStatuses(ctx context.Context) ([]string, error) {
	return nil, s.err
}

func (s failingSource) CountEquipment(ctx context.Context) (int64, error) {
	return 0, s.err
}

func (s failingSource) ExpensesBetween(ctx context.Context, from, to string) ([]dashboard.ExpenseRow, error) {
	return nil, s.err
}

func newServer(t *testing.T, options ...func(*Dependencies)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dm := coretest.NewDatabase(t)
	set := registries.NewSet(dm)
	store := &fakeStore{}
	catalog := locale.For(locale.English)
	logger := logging.New(logging.Config{Level: slog.LevelError, Output: io.Discard})

	deps := Dependencies{
		Registries:    set,
		Dashboard:     dashboard.New(dashboard.NewGormSource(dm, set), catalog),
		Attacher:      receipt.NewAttacher(store),
		Catalog:       catalog,
		Logger:        logger,
		SigningSecret: secret,
		SessionCookie: "bizdesk.session",
	}
	for _, opt := range options {
		opt(&deps)
	}
	r := NewRouter(deps)

	token, err := security.CreateIdentityToken(&security.Identity{ID: "user-1", Email: "user@example.com"}, secret, time.Hour)
	require.NoError(t, err)

	return &testServer{t: t, r: r, set: set, store: store, token: token}
}

func (s *testServer) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.r.ServeHTTP(w, req)
	return w
}

func (s *testServer) json(method, path string, v any) *httptest.ResponseRecorder {
	s.t.Helper()
	var body io.Reader
	if v != nil {
		b, err := json.Marshal(v)
		require.NoError(s.t, err)
		body = bytes.NewReader(b)
	}
	return s.do(method, path, body, "application/json")
}

type filePart struct {
	name        string
	contentType string
	data        []byte
}

func (s *testServer) multipart(method, path string, data any, file *filePart, fields map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	b, err := json.Marshal(data)
	require.NoError(s.t, err)
	require.NoError(s.t, mw.WriteField("data", string(b)))
	for k, v := range fields {
		require.NoError(s.t, mw.WriteField(k, v))
	}

	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="receipt"; filename="`+file.name+`"`)
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := mw.CreatePart(h)
		require.NoError(s.t, err)
		_, err = part.Write(file.data)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, mw.Close())

	return s.do(method, path, &buf, mw.FormDataContentType())
}

type mutation[T any] struct {
	Data   *T              `json:"data"`
	Items  []T             `json:"items"`
	Totals json.RawMessage `json:"totals"`
}

type search[T any] struct {
	Data   []T             `json:"data"`
	Totals json.RawMessage `json:"totals"`
}

type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestPing(t *testing.T) {
	s := newServer(t)
	s.token = ""

	w := s.do(http.MethodGet, "/ping", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestAuthenticationRequired(t *testing.T) {
	s := newServer(t)
	s.token = ""

	w := s.do(http.MethodGet, "/api/clients", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/session/signout", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "bizdesk.session=;")
}

func TestClientLifecycle(t *testing.T) {
	s := newServer(t)

	w := s.json(http.MethodPost, "/api/clients", models.Client{Name: "Acme", Email: "ops@acme.test"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[mutation[models.Client]](t, w)
	require.NotNil(t, created.Data)
	assert.NotZero(t, created.Data.ID)
	assert.Len(t, created.Items, 1)

	w = s.json(http.MethodPost, "/api/clients", models.Client{Name: "Jean Tremblay", Email: "jean@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/clients?q=jean", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[search[models.Client]](t, w)
	require.Len(t, found.Data, 1)
	assert.Equal(t, "Jean Tremblay", found.Data[0].Name)

	id := created.Data.ID
	path := "/api/clients/" + itoa(id)
	w = s.json(http.MethodPut, path, models.Client{Name: "Acme Ltd", Email: "ops@acme.test"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[mutation[models.Client]](t, w)
	assert.Equal(t, "Acme Ltd", updated.Data.Name)
	assert.Equal(t, id, updated.Data.ID)

	w = s.do(http.MethodDelete, path, nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorBody](t, w).Message, "Are you sure")
	count, err := s.set.Clients.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	w = s.do(http.MethodDelete, path+"?confirm=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	deleted := decode[mutation[models.Client]](t, w)
	assert.Nil(t, deleted.Data)
	assert.Len(t, deleted.Items, 1)

	w = s.do(http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientErrors(t *testing.T) {
	s := newServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		field  string
	}{
		{name: "Invalid email", method: http.MethodPost, path: "/api/clients", body: `{"name":"A","email":"nope"}`, status: http.StatusBadRequest, field: "email"},
		{name: "Missing name", method: http.MethodPost, path: "/api/clients", body: `{"email":"a@b.test"}`, status: http.StatusBadRequest, field: "name"},
		{name: "Malformed body", method: http.MethodPost, path: "/api/clients", body: `{"name":`, status: http.StatusBadRequest},
		{name: "Bad id", method: http.MethodGet, path: "/api/clients/abc", status: http.StatusBadRequest},
		{name: "Update missing", method: http.MethodPut, path: "/api/clients/99", body: `{"name":"A","email":"a@b.test"}`, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(tt.method, tt.path, strings.NewReader(tt.body), "application/json")
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.field != "" {
				assert.Contains(t, decode[errorBody](t, w).Fields, tt.field)
			}
		})
	}
}

func TestProjectsExpandClientAndOptions(t *testing.T) {
	s := newServer(t)

	w := s.json(http.MethodPost, "/api/clients", models.Client{Name: "Acme", Email: "ops@acme.test"})
	require.Equal(t, http.StatusCreated, w.Code)
	client := decode[mutation[models.Client]](t, w).Data

	w = s.json(http.MethodPost, "/api/projects", models.Project{Name: "Bridge", ClientID: client.ID, Status: models.ProjectActive})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	project := decode[mutation[models.Project]](t, w).Data
	require.NotNil(t, project.Client)
	assert.Equal(t, "Acme", project.Client.Name)

	w = s.do(http.MethodGet, "/api/clients/options", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Acme"`)

	w = s.do(http.MethodGet, "/api/projects?q=acme", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[search[models.Project]](t, w).Data, 1)

	w = s.do(http.MethodDelete, "/api/clients/"+itoa(client.ID)+"?confirm=true", nil, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDrafts(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/api/timesheets/draft", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	draft := decode[struct {
		Data models.Timesheet `json:"data"`
	}](t, w).Data
	assert.Equal(t, "08:00", draft.StartTime)
	assert.Equal(t, "17:00", draft.EndTime)
	assert.Equal(t, 9.0, draft.Hours)

	w = s.do(http.MethodGet, "/api/expenses/draft", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"fuel"`)
}

func TestTimesheetHoursAndTotals(t *testing.T) {
	s := newServer(t)

	w := s.json(http.MethodPost, "/api/timesheets", models.Timesheet{
		EmployeeName: "Marie", Date: "2025-03-03", StartTime: "08:00", EndTime: "16:30", HourlyRate: 40,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 8.5, decode[mutation[models.Timesheet]](t, w).Data.Hours)

	w = s.do(http.MethodGet, "/api/timesheets", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1,"hours":8.5,"cost":340}`, string(decode[search[models.Timesheet]](t, w).Totals))

	w = s.do(http.MethodGet, "/api/timesheets/export", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestExpenseReceipts(t *testing.T) {
	expense := models.Expense{Description: "Diesel", Amount: 120.5, Category: models.CategoryFuel, Date: "2025-03-01"}

	t.Run("Upload then keep then remove", func(t *testing.T) {
		s := newServer(t)

		w := s.multipart(http.MethodPost, "/api/expenses", expense, &filePart{name: "ticket.png", data: png}, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[mutation[models.Expense]](t, w).Data
		require.NotNil(t, created.ReceiptImage)
		require.Len(t, s.store.keys, 1)
		assert.True(t, strings.HasPrefix(s.store.keys[0], "user-1/"))
		assert.Equal(t, "https://cdn.test/"+s.store.keys[0], *created.ReceiptImage)
		assert.Equal(t, "user-1", created.UserID)

		path := "/api/expenses/" + itoa(created.ID)
		edit := expense
		edit.Amount = 99
		w = s.json(http.MethodPut, path, edit)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		kept := decode[mutation[models.Expense]](t, w).Data
		require.NotNil(t, kept.ReceiptImage)
		assert.Equal(t, *created.ReceiptImage, *kept.ReceiptImage)
		assert.Equal(t, 99.0, kept.Amount)

		w = s.multipart(http.MethodPut, path, edit, nil, map[string]string{"remove_receipt": "true"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Nil(t, decode[mutation[models.Expense]](t, w).Data.ReceiptImage)
		assert.Len(t, s.store.keys, 1)
	})

	rejects := []struct {
		name   string
		file   *filePart
		status int
	}{
		{name: "Too large", file: &filePart{name: "big.png", contentType: "image/png", data: make([]byte, 6*1024*1024)}, status: http.StatusBadRequest},
		{name: "Not an image", file: &filePart{name: "notes.txt", contentType: "text/plain", data: []byte("hello")}, status: http.StatusBadRequest},
	}
	for _, tt := range rejects {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)

			w := s.multipart(http.MethodPost, "/api/expenses", expense, tt.file, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Contains(t, decode[errorBody](t, w).Fields, "receipt")
			assert.Empty(t, s.store.keys)

			count, err := s.set.Expenses.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}

	t.Run("Upload failure writes nothing", func(t *testing.T) {
		s := newServer(t)
		s.store.err = errors.New("bucket unavailable")

		w := s.multipart(http.MethodPost, "/api/expenses", expense, &filePart{name: "ticket.png", data: png}, nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)

		count, err := s.set.Expenses.Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Invalid expense uploads nothing", func(t *testing.T) {
		s := newServer(t)
		bad := expense
		bad.Description = ""

		w := s.multipart(http.MethodPost, "/api/expenses", bad, &filePart{name: "ticket.png", data: png}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, s.store.keys)
	})
}

func TestExpensePreviewAndTotals(t *testing.T) {
	s := newServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("receipt", "ticket.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := s.do(http.MethodPost, "/api/expenses/receipt-preview", &buf, mw.FormDataContentType())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "data:image/png;base64,")
	assert.Empty(t, s.store.keys)

	for _, amount := range []float64{0.1, 0.2} {
		w := s.json(http.MethodPost, "/api/expenses", models.Expense{Description: "Bolts", Amount: amount, Category: models.CategoryMaterials, Date: "2025-03-02"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/expenses", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2,"amount":0.3}`, string(decode[search[models.Expense]](t, w).Totals))
}

func TestExpenseStampsIdentity(t *testing.T) {
	s := newServer(t)
	token, err := security.CreateIdentityToken(&security.Identity{ID: "user-2"}, secret, time.Hour)
	require.NoError(t, err)
	s.token = token

	w := s.json(http.MethodPost, "/api/expenses", models.Expense{Description: "Fuel", Amount: 10, Category: models.CategoryFuel, Date: "2025-03-02"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "user-2", decode[mutation[models.Expense]](t, w).Data.UserID)
}

func TestDashboard(t *testing.T) {
	s := newServer(t)

	w := s.json(http.MethodPost, "/api/clients", models.Client{Name: "Acme", Email: "ops@acme.test"})
	require.Equal(t, http.StatusCreated, w.Code)
	client := decode[mutation[models.Client]](t, w).Data
	for _, status := range []models.ProjectStatus{models.ProjectActive, models.ProjectActive, models.ProjectOnHold} {
		w := s.json(http.MethodPost, "/api/projects", models.Project{Name: "P", ClientID: client.ID, Status: status})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = s.do(http.MethodGet, "/api/dashboard", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decode[struct {
		Data dashboard.Summary `json:"data"`
	}](t, w).Data
	assert.Equal(t, int64(1), summary.TotalClients)
	assert.Equal(t, 2, summary.ActiveProjects)
	assert.Zero(t, summary.TotalEquipment)
	assert.Len(t, summary.ExpensesByMonth, int(time.Now().Month()))
}

func TestDashboardFailureIsReported(t *testing.T) {
	notifier := &fakeNotifier{}
	cause := core.Remote("count clients", errors.New("connection refused"))
	s := newServer(t, func(d *Dependencies) {
		d.Dashboard = dashboard.New(failingSource{err: cause}, d.Catalog)
		d.Notifier = notifier
	})

	w := s.do(http.MethodGet, "/api/dashboard", nil, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	msg := decode[errorBody](t, w).Message
	assert.True(t, strings.HasPrefix(msg, "Error loading the dashboard: "), msg)
	assert.Contains(t, msg, "connection refused")
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, msg, notifier.errors[0])
}

func TestLedgerMutationsCarryTotals(t *testing.T) {
	s := newServer(t)
	expense := models.Expense{Description: "Bolts", Amount: 12.5, Category: models.CategoryMaterials, Date: "2025-03-02"}

	w := s.json(http.MethodPost, "/api/expenses", expense)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[mutation[models.Expense]](t, w)
	assert.JSONEq(t, `{"count":1,"amount":12.5}`, string(created.Totals))

	w = s.json(http.MethodPost, "/api/expenses", expense)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"count":2,"amount":25}`, string(decode[mutation[models.Expense]](t, w).Totals))

	w = s.do(http.MethodDelete, "/api/expenses/"+itoa(created.Data.ID)+"?confirm=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1,"amount":12.5}`, string(decode[mutation[models.Expense]](t, w).Totals))

	w = s.json(http.MethodPost, "/api/timesheets", models.Timesheet{EmployeeName: "Marie", Date: "2025-03-03", Hours: 2, HourlyRate: 30})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"count":1,"hours":2,"cost":60}`, string(decode[mutation[models.Timesheet]](t, w).Totals))

	w = s.json(http.MethodPost, "/api/clients", models.Client{Name: "Acme", Email: "ops@acme.test"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, decode[mutation[models.Client]](t, w).Totals)
}

func TestProjectWithUnknownClient(t *testing.T) {
	s := newServer(t)

	w := s.json(http.MethodPost, "/api/projects", models.Project{Name: "Bridge", ClientID: 9999})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, decode[errorBody](t, w).Fields, "client_id")
}
