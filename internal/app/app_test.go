package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/OWENATOR-3000/staffPortal/internal/config"
	"github.com/OWENATOR-3000/staffPortal/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := config.Config{
		Env: "test",
		Forms: config.FormsConfig{
			LogoPath: "",
			TempDir:  t.TempDir(),
		},
		HTTP: config.HTTPConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
	r := gin.New()
	require.NoError(t, BuildApp(r, cfg, zap.NewNop()))
	return r
}

func TestBuildApp_Healthz(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestBuildApp_CreateLeaveFormFromScratch(t *testing.T) {
	r := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{
		"employee_name":   "Jane Doe",
		"supervisor_name": "John Smith",
		"start_date":      "2024-05-01",
		"end_date":        "2024-05-03",
		"reason_type":     "Vacation",
		"number_of_hours": 24,
		"created_at":      "2024-04-20",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-leave-form-from-scratch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Leave_Request_Jane_Doe.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func leaveRequestBody(t *testing.T, name string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"employee_name":   name,
		"supervisor_name": "John Smith",
		"start_date":      "2024-05-01",
		"end_date":        "2024-05-03",
		"reason_type":     "Vacation",
		"number_of_hours": 24,
		"created_at":      "2024-04-20",
	})
	require.NoError(t, err)
	return body
}

func TestBuildApp_BurstWithDefaultConfig(t *testing.T) {
	for _, key := range []string{"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOGO_PATH"} {
		t.Setenv(key, "")
	}
	t.Setenv("PDF_TEMP_DIR", t.TempDir())

	r := gin.New()
	require.NoError(t, BuildApp(r, config.Load(), zap.NewNop()))

	body := leaveRequestBody(t, "Jane Doe")
	codes := map[int]int{}
	for i := 0; i < 25; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/create-leave-form-from-scratch", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.0.0.5:41000"
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}

	assert.Equal(t, map[int]int{http.StatusOK: 25}, codes)
}

func TestBuildApp_EmptyEmployeeName(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-leave-form-from-scratch", bytes.NewReader(leaveRequestBody(t, "")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Leave_Request_.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestBuildApp_ValidationError(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-leave-form-from-scratch", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, apperror.CodeValidation, env.Error.Code)
}

func TestBuildApp_TemplateDownload(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forms/registration", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "employee_form.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}
