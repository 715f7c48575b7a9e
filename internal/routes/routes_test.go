package routes

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-api/pkg/config"
	"game-api/pkg/filestorage"
	"game-api/pkg/service"
	"game-api/pkg/utils"
	"game-api/pkg/validation"
)

type stubCompleter struct{ reply string }

func (s stubCompleter) Complete(context.Context, string, string) (string, error) {
	return s.reply, nil
}

func (stubCompleter) Name() string { return "stub" }

// newTestServer wires the router without a database; only handlers that fail before
// reaching storage can be exercised.
func newTestServer(t *testing.T, authEnabled bool) (*echo.Echo, service.JWTService) {
	t.Helper()
	logger := zap.NewNop()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cvs"), 0o755))
	storage, err := filestorage.NewLocalFileStorage(dir, "/assets")
	require.NoError(t, err)

	cfg := &config.Config{
		Auth:      config.AuthConfig{Enabled: authEnabled},
		Redis:     config.RedisConfig{HierarchyTTL: time.Minute},
		Embedding: config.EmbeddingConfig{Collection: "curriculums", ChunkSize: 1024, TopK: 3},
	}
	jwt := service.NewJWTService("secreto", time.Minute, time.Hour, logger)

	e := echo.New()
	e.JSONSerializer = utils.JSONSerializer{}
	e.Validator = validation.New()
	require.NoError(t, InitRouter(e, Dependencies{
		JWT:         jwt,
		Completer:   stubCompleter{reply: `{"pasos":[{"titulo":"Aislar","descripcion":"Cortar energía"}],"precauciones":"EPP","herramientas":"Llaves"}`},
		FileStorage: storage,
		Config:      cfg,
		Logger:      logger,
	}))
	return e, jwt
}

func do(e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestPublicRoutes(t *testing.T) {
	e, _ := newTestServer(t, true)

	rec, body := do(e, httptest.NewRequest(http.MethodGet, "/api/health/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "GAME API está funcionando correctamente", body["message"])

	rec, body = do(e, httptest.NewRequest(http.MethodGet, "/api/ia/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "online", body["status"])
}

func TestSecureRoutesRequireToken(t *testing.T) {
	e, jwt := newTestServer(t, true)

	rec, _ := do(e, httptest.NewRequest(http.MethodGet, "/api/plantas", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/plantas", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec, _ = do(e, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, refresh, err := jwt.GenerateTokens(1, 1)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/plantas", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+refresh)
	rec, _ = do(e, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestValidation(t *testing.T) {
	e, _ := newTestServer(t, false)

	t.Run("bad id", func(t *testing.T) {
		rec, body := do(e, httptest.NewRequest(http.MethodGet, "/api/plantas/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["status"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/plantas", strings.NewReader(`{"nombre":"Norte"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec, body := do(e, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body["message"], "Error de validación")
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/equipos", strings.NewReader(`{"nombre":`))
		rec, body := do(e, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Datos no válidos", body["message"])
	})

	t.Run("bad date filter", func(t *testing.T) {
		rec, _ := do(e, httptest.NewRequest(http.MethodGet, "/api/actividades/detalladas?desde=ayer", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bulk upload without file", func(t *testing.T) {
		rec, body := do(e, httptest.NewRequest(http.MethodPost, "/api/cargue_masivo/cargos", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No se envió ningún archivo", body["message"])
	})
}

func TestResumeRoutes(t *testing.T) {
	e, _ := newTestServer(t, false)

	rec, body := do(e, httptest.NewRequest(http.MethodGet, "/api/verificar_cv/7", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]interface{}{"exists": false}, body["body"])

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "hoja.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("texto"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload_cv/7", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec, body = do(e, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Solo se permiten archivos PDF", body["message"])
}

func TestGenerateProcedureRoute(t *testing.T) {
	e, _ := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/generar-procedimiento", strings.NewReader(`{}`))
	rec, _ := do(e, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/generar-procedimiento", strings.NewReader(`{"tipo_equipo":"Bomba"}`))
	rec, body := do(e, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["status"])
	procedure := body["body"].(map[string]interface{})
	assert.Equal(t, "EPP", procedure["precauciones"])
	assert.Len(t, procedure["pasos"], 1)
}
