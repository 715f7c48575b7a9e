package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/services"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/utils"
	"game-api/pkg/validation"
)

type ResumeController struct {
	service services.ResumeServiceInterface
	logger  *zap.Logger
}

func NewResumeController(service services.ResumeServiceInterface, logger *zap.Logger) *ResumeController {
	return &ResumeController{service: service, logger: logger}
}

func (c *ResumeController) Exists(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "persona_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.ResumeExistsDTO{Exists: c.service.Exists(id)}, "Verificación completada", http.StatusOK)
}

func (c *ResumeController) Upload(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "persona_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "No se envió ningún archivo", err, nil), c.logger)
	}
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".pdf" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Solo se permiten archivos PDF"), c.logger)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInternalError("Error al procesar el archivo", err), c.logger)
	}
	defer src.Close()

	if err := validation.ValidateFile(fileHeader, src, "cv"); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), apperrors.ErrBadRequest, nil), c.logger)
	}

	if err := c.service.Upload(ctx.Request().Context(), id, src); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.MessageDTO{Message: "Archivo cargado con éxito"}, "Archivo cargado con éxito", http.StatusOK)
}

func (c *ResumeController) List(ctx echo.Context) error {
	files, err := c.service.ListFiles()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.ResumeListDTO{Files: files}, "Lista de CVs obtenida", http.StatusOK)
}

func (c *ResumeController) Index(ctx echo.Context) error {
	result, err := c.service.Index(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, result.Message, http.StatusOK)
}

func (c *ResumeController) Ask(ctx echo.Context) error {
	result, err := c.service.Ask(ctx.Request().Context(), ctx.QueryParam("pregunta"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Consulta respondida", http.StatusOK)
}
