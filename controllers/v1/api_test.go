package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"leave-tools-backend/lib/compiler"
	"leave-tools-backend/lib/consultants"
	pdfexport "leave-tools-backend/lib/export/pdf"
	xlsexport "leave-tools-backend/lib/export/xls"
	"leave-tools-backend/lib/gate"
	leavehandler "leave-tools-backend/lib/leave"
	leavestore "leave-tools-backend/lib/leave/store"
	"leave-tools-backend/lib/workbook"
	compileapimodels "leave-tools-backend/models/api/compile"
	leaveapimodels "leave-tools-backend/models/api/leave"
	sessionapimodels "leave-tools-backend/models/api/session"
)

const adminPassword = "rota-admin"

type envelope struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	RowCount int64           `json:"row_count"`
}

func newTestApp(t *testing.T) *fiber.App {
	dir := t.TempDir()
	store, err := leavestore.NewInstance(filepath.Join(dir, "requests"))
	require.NoError(t, err)
	workbookPath := filepath.Join(dir, "rota.xlsx")
	require.NoError(t, workbook.CreateTemplate(workbookPath, "Leave", "Consultants"))

	gate.NewHandler(adminPassword, "test-secret", time.Hour)
	consultants.NewHandler(workbookPath, "Consultants")
	leavehandler.NewHandler(store, false, consultants.Instance.List)
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	compiler.NewHandler(store, compiler.Options{
		WorkbookPath: workbookPath,
		Sheet:        "Leave",
		UseLockFile:  true,
	}, compiler.Deps{})

	app := fiber.New()
	InitRouters(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) != 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func openSession(t *testing.T, app *fiber.App) string {
	code, env := doRequest(t, app, fiber.MethodPost, "/session", "", nil)
	require.Equal(t, http.StatusOK, code)
	var sess sessionapimodels.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	require.False(t, sess.Unlocked)
	require.NotEmpty(t, sess.Token)
	return sess.Token
}

func TestLeaveApi(t *testing.T) {
	app := newTestApp(t)

	payload := leaveapimodels.LeaveData{
		Name:      "Dr A",
		StartDate: "2025-01-02",
		EndDate:   "2025-01-05",
		LeaveType: "annual",
	}
	code, env := doRequest(t, app, fiber.MethodPost, "/leave", "", payload)
	require.Equal(t, http.StatusOK, code, env.Message)
	var created leaveapimodels.LeaveView
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.RequestID)
	require.Equal(t, "Annual", created.LeaveType)
	require.NotNil(t, created.Approved)
	require.True(t, *created.Approved)

	t.Run(`get`, func(t *testing.T) {
		code, env := doRequest(t, app, fiber.MethodGet, "/leave/"+created.RequestID, "", nil)
		require.Equal(t, http.StatusOK, code)
		var got leaveapimodels.LeaveView
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Equal(t, created, got)
	})
	t.Run(`update`, func(t *testing.T) {
		edit := payload
		edit.Notes = "conference"
		code, env := doRequest(t, app, fiber.MethodPut, "/leave/"+created.RequestID, "", edit)
		require.Equal(t, http.StatusOK, code, env.Message)
		var got leaveapimodels.LeaveView
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Equal(t, "conference", got.Notes)
		require.Equal(t, created.CreatedAt, got.CreatedAt)
	})
	t.Run(`list with filters`, func(t *testing.T) {
		code, env := doRequest(t, app, fiber.MethodGet, "/leave/list?search=CONFER", "", nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(1), env.RowCount)

		code, env = doRequest(t, app, fiber.MethodGet, "/leave/list?approval=not_approved", "", nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(0), env.RowCount)

		code, _ = doRequest(t, app, fiber.MethodGet, "/leave/list?approval=maybe", "", nil)
		require.Equal(t, http.StatusBadRequest, code)
	})
	t.Run(`validation error`, func(t *testing.T) {
		bad := payload
		bad.EndDate = "2024-12-31"
		code, env := doRequest(t, app, fiber.MethodPost, "/leave", "", bad)
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "fail", env.Status)
		require.NotEmpty(t, env.Message)
	})
	t.Run(`xlsx export`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/leave/export/xlsx", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xlsx")
	})
	t.Run(`pdf export`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/leave/export/pdf", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	})
	t.Run(`delete`, func(t *testing.T) {
		code, _ := doRequest(t, app, fiber.MethodDelete, "/leave/"+created.RequestID, "", nil)
		require.Equal(t, http.StatusOK, code)
		code, _ = doRequest(t, app, fiber.MethodGet, "/leave/"+created.RequestID, "", nil)
		require.Equal(t, http.StatusNotFound, code)
		code, _ = doRequest(t, app, fiber.MethodDelete, "/leave/"+created.RequestID, "", nil)
		require.Equal(t, http.StatusNotFound, code)
	})
}

func TestCompileGate(t *testing.T) {
	app := newTestApp(t)
	code, _ := doRequest(t, app, fiber.MethodPost, "/leave", "", leaveapimodels.LeaveData{
		Name:      "Dr B",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-02",
		LeaveType: "Study",
	})
	require.Equal(t, http.StatusOK, code)

	t.Run(`no session`, func(t *testing.T) {
		code, _ := doRequest(t, app, fiber.MethodPost, "/compile", "", nil)
		require.Equal(t, http.StatusUnauthorized, code)
	})
	t.Run(`locked session`, func(t *testing.T) {
		token := openSession(t, app)
		code, env := doRequest(t, app, fiber.MethodPost, "/compile", token, nil)
		require.Equal(t, http.StatusForbidden, code)
		require.Equal(t, "access denied", env.Message)
	})
	t.Run(`wrong password`, func(t *testing.T) {
		token := openSession(t, app)
		for _, password := range []string{"nope", ""} {
			code, env := doRequest(t, app, fiber.MethodPost, "/session/unlock", token,
				sessionapimodels.UnlockRequest{Password: password})
			require.Equal(t, http.StatusForbidden, code)
			require.Equal(t, "access denied", env.Message)
		}
	})
	t.Run(`unlocked session compiles`, func(t *testing.T) {
		token := openSession(t, app)
		code, env := doRequest(t, app, fiber.MethodPost, "/session/unlock", token,
			sessionapimodels.UnlockRequest{Password: adminPassword})
		require.Equal(t, http.StatusOK, code)
		var sess sessionapimodels.SessionResponse
		require.NoError(t, json.Unmarshal(env.Data, &sess))
		require.True(t, sess.Unlocked)

		code, env = doRequest(t, app, fiber.MethodPost, "/compile", sess.Token, nil)
		require.Equal(t, http.StatusOK, code, env.Message)
		var result compileapimodels.CompileResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.Equal(t, 1, result.Total)
		require.Equal(t, 1, result.Appended)
		require.Empty(t, result.BackupPath)

		code, _ = doRequest(t, app, fiber.MethodGet, "/compile/history", sess.Token, nil)
		require.Equal(t, http.StatusNotFound, code)
	})
	t.Run(`consultants`, func(t *testing.T) {
		code, env := doRequest(t, app, fiber.MethodGet, "/consultants", "", nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "success", env.Status)
	})
}
