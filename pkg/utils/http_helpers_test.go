package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "game-api/pkg/errors"
)

func TestParseFilterFromQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{})
		assert.Equal(t, DefaultLimit, f.Limit)
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 0, f.Offset)
		assert.True(t, f.WithPagination)
		assert.Empty(t, f.Filter)
	})

	t.Run("page and limit give offset", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{"page": {"3"}, "limit": {"20"}})
		assert.Equal(t, 40, f.Offset)
		assert.Equal(t, 3, f.Page)
	})

	t.Run("skip wins over page", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{"skip": {"50"}, "limit": {"25"}, "page": {"9"}})
		assert.Equal(t, 50, f.Offset)
		assert.Equal(t, 3, f.Page)
	})

	t.Run("limit is capped", func(t *testing.T) {
		assert.Equal(t, MaxLimit, ParseFilterFromQuery(url.Values{"limit": {"100000"}}).Limit)
	})

	t.Run("filter sort search", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{
			"filter[estado]": {"activo"},
			"sort[nombre]":   {"DESC"},
			"sort[id]":       {"sideways"},
			"search":         {"bomba"},
			"withPagination": {"false"},
		})
		assert.Equal(t, "activo", f.Filter["estado"])
		assert.Equal(t, map[string]string{"nombre": "desc"}, f.Sort)
		assert.Equal(t, "bomba", f.Search)
	})

	t.Run("withPagination=false keeps the page bounds", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{"withPagination": {"false"}, "limit": {"100000"}, "skip": {"10"}})
		assert.True(t, f.WithPagination)
		assert.Equal(t, MaxLimit, f.Limit)
		assert.Equal(t, 10, f.Offset)
	})

	t.Run("legacy keys become filters", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{"contrato_id": {"3"}, "otro": {"1"}}, "contrato_id")
		assert.Equal(t, "3", f.Filter["contrato_id"])
		assert.NotContains(t, f.Filter, "otro")
	})

	t.Run("explicit filter beats legacy key", func(t *testing.T) {
		f := ParseFilterFromQuery(url.Values{"contrato_id": {"3"}, "filter[contrato_id]": {"4"}}, "contrato_id")
		assert.Equal(t, "4", f.Filter["contrato_id"])
	})
}

func newTestContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.JSONSerializer = JSONSerializer{}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessResponse(t *testing.T) {
	t.Run("plain body", func(t *testing.T) {
		c, rec := newTestContext("/api/plantas")
		require.NoError(t, SuccessResponse(c, []int{1, 2}, "ok", http.StatusOK, 2))
		body := decode(t, rec)
		assert.Equal(t, true, body["status"])
		assert.Equal(t, "ok", body["message"])
		assert.Len(t, body["body"], 2)
	})

	t.Run("paginated body", func(t *testing.T) {
		c, rec := newTestContext("/api/plantas?withPagination=true&limit=2&page=2")
		require.NoError(t, SuccessResponse(c, []int{3, 4}, "ok", http.StatusOK, 5))
		body := decode(t, rec)["body"].(map[string]interface{})
		assert.Len(t, body["list"], 2)
		pagination := body["pagination"].(map[string]interface{})
		assert.EqualValues(t, 5, pagination["total_count"])
		assert.EqualValues(t, 2, pagination["page"])
		assert.EqualValues(t, 3, pagination["total_pages"])
	})
}

func TestErrorResponse(t *testing.T) {
	logger := zap.NewNop()
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"http error", apperrors.NewNotFoundError("Planta no encontrada"), http.StatusNotFound, "Planta no encontrada"},
		{"invalid input", apperrors.NewInvalidInputError("campo %s", "nombre"), http.StatusBadRequest, "campo nombre"},
		{"echo error", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "grande"), http.StatusRequestEntityTooLarge, "grande"},
		{"wrapped sentinel", fmt.Errorf("repo: %w", apperrors.ErrConflict), http.StatusConflict, ""},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, apperrors.ErrForbidden.Error()},
		{"token", apperrors.ErrTokenExpired, http.StatusUnauthorized, apperrors.ErrTokenExpired.Error()},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Error interno del servidor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext("/")
			require.NoError(t, ErrorResponse(c, tt.err, logger))
			assert.Equal(t, tt.code, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["status"])
			if tt.message != "" {
				assert.Equal(t, tt.message, body["message"])
			}
		})
	}
}

func TestParseID(t *testing.T) {
	c, _ := newTestContext("/")
	c.SetParamNames("id")
	c.SetParamValues("42")
	id, err := ParseID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	c.SetParamValues("abc")
	_, err = ParseID(c, "id")
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
