package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/services"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/utils"
	"game-api/pkg/validation"
)

type BulkUploadController struct {
	service services.BulkUploadServiceInterface
	logger  *zap.Logger
}

func NewBulkUploadController(service services.BulkUploadServiceInterface, logger *zap.Logger) *BulkUploadController {
	return &BulkUploadController{service: service, logger: logger}
}

// Upload loads the rows of an .xlsx file into the table named by :tabla.
func (c *BulkUploadController) Upload(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "No se envió ningún archivo", err, nil), c.logger)
	}
	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInternalError("Error al procesar el archivo", err), c.logger)
	}
	defer src.Close()

	if err := validation.ValidateFile(fileHeader, src, "spreadsheet"); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), apperrors.ErrBadRequest, nil), c.logger)
	}

	result, err := c.service.Upload(ctx.Request().Context(), ctx.Param("tabla"), src)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, result.Message, http.StatusOK)
}

type ProcedureController struct {
	service services.ProcedureServiceInterface
	logger  *zap.Logger
}

func NewProcedureController(service services.ProcedureServiceInterface, logger *zap.Logger) *ProcedureController {
	return &ProcedureController{service: service, logger: logger}
}

func (c *ProcedureController) Generate(ctx echo.Context) error {
	var payload dto.GenerateProcedureDTO
	if _, err := bindBody(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.Generate(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Procedimiento generado", http.StatusOK)
}

func (c *ProcedureController) Status(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.StatusDTO{Status: "online", Message: "Servicio de IA para mantenimiento disponible"})
}

// Health answers the liveness probe.
func Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dto.StatusDTO{Status: "online", Message: "GAME API está funcionando correctamente"})
}
