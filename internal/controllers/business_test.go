package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-api/internal/services"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/utils"
)

// stubClientService answers UnlinkContract; other methods panic through the nil interface.
type stubClientService struct {
	services.ClientServiceInterface
	err                  error
	clientID, contractID uint64
}

func (s *stubClientService) UnlinkContract(_ context.Context, clientID, contractID uint64) error {
	s.clientID, s.contractID = clientID, contractID
	return s.err
}

func serveUnlink(t *testing.T, svc *stubClientService) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	e.JSONSerializer = utils.JSONSerializer{}
	ctrl := NewClientController(svc, zap.NewNop())
	e.DELETE("/api/clientes/:id/contratos/:contrato_id", ctrl.UnlinkContract)

	req := httptest.NewRequest(http.MethodDelete, "/api/clientes/3/contratos/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestClientController_UnlinkContract(t *testing.T) {
	t.Run("replies ok", func(t *testing.T) {
		svc := &stubClientService{}
		rec, body := serveUnlink(t, svc)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["status"])
		assert.Equal(t, map[string]interface{}{"ok": true}, body["body"])
		assert.Equal(t, uint64(3), svc.clientID)
		assert.Equal(t, uint64(7), svc.contractID)
	})

	t.Run("contract of another client", func(t *testing.T) {
		svc := &stubClientService{err: apperrors.NewBadRequestError("El contrato no está asociado a este cliente")}
		rec, body := serveUnlink(t, svc)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["status"])
		assert.Equal(t, "El contrato no está asociado a este cliente", body["message"])
	})
}
