package controllers

import (
	"bytes"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/services"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/utils"
)

// messages are the success texts of one entity's CRUD endpoints.
type messages struct {
	listed  string
	found   string
	created string
	updated string
	deleted string
}

// crudController serves list/get/create/update/delete for one entity.
type crudController[C any, U any, R any] struct {
	service services.CrudServiceInterface[C, U, R]
	logger  *zap.Logger
	msg     messages
	// legacy plain query keys accepted as filters, e.g. ?contrato_id=3
	legacy []string
}

func newCrudController[C any, U any, R any](
	service services.CrudServiceInterface[C, U, R],
	logger *zap.Logger,
	msg messages,
	legacy ...string,
) crudController[C, U, R] {
	return crudController[C, U, R]{service: service, logger: logger, msg: msg, legacy: legacy}
}

func (c *crudController[C, U, R]) List(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams(), c.legacy...)
	items, total, err := c.service.List(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, c.msg.listed, http.StatusOK, total)
}

func (c *crudController[C, U, R]) Get(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.Get(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, c.msg.found, http.StatusOK)
}

func (c *crudController[C, U, R]) Create(ctx echo.Context) error {
	var payload C
	if _, err := bindBody(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.Create(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, c.msg.created, http.StatusCreated)
}

func (c *crudController[C, U, R]) Update(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload U
	rawBody, err := bindBody(ctx, &payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.Update(ctx.Request().Context(), id, payload, rawBody)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, c.msg.updated, http.StatusOK)
}

func (c *crudController[C, U, R]) Delete(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.DeletedDTO{OK: true}, c.msg.deleted, http.StatusOK)
}

// bindBody reads the JSON body into payload, validates it and returns the raw bytes
// so that updates can tell which fields were sent.
func bindBody(ctx echo.Context, payload interface{}) ([]byte, error) {
	rawBody, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "No se pudo leer el cuerpo de la solicitud", err, nil)
	}
	ctx.Request().Body = io.NopCloser(bytes.NewBuffer(rawBody))

	if len(bytes.TrimSpace(rawBody)) == 0 {
		rawBody = []byte("{}")
	}
	if err := json.Unmarshal(rawBody, payload); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Datos no válidos", err, nil)
	}
	if err := ctx.Validate(payload); err != nil {
		return nil, err
	}
	return rawBody, nil
}

// bindQuery fills payload from query parameters tagged `query:"..."` and validates it.
func bindQuery(ctx echo.Context, payload interface{}) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, payload); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Parámetros de consulta no válidos", err, nil)
	}
	return ctx.Validate(payload)
}

func parseIDs(ctx echo.Context, names ...string) ([]uint64, error) {
	ids := make([]uint64, 0, len(names))
	for _, name := range names {
		id, err := utils.ParseID(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
