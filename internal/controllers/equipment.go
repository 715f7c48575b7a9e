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

type AssetTypeController struct {
	crudController[dto.CreateAssetTypeDTO, dto.UpdateAssetTypeDTO, dto.AssetTypeDTO]
	service services.AssetTypeServiceInterface
}

func NewAssetTypeController(service services.AssetTypeServiceInterface, logger *zap.Logger) *AssetTypeController {
	return &AssetTypeController{
		crudController: newCrudController[dto.CreateAssetTypeDTO, dto.UpdateAssetTypeDTO, dto.AssetTypeDTO](service, logger, messages{
			listed:  "Lista de tipos de activo obtenida",
			found:   "Tipo de activo encontrado",
			created: "Tipo de activo creado",
			updated: "Tipo de activo actualizado",
			deleted: "Tipo de activo eliminado",
		}),
		service: service,
	}
}

// UploadImage handles POST /tipos-activo/:id/imagen with a multipart "file".
func (c *AssetTypeController) UploadImage(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "No se envió ningún archivo", err, nil), c.logger)
	}
	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInternalError("Error al procesar el archivo", err), c.logger)
	}
	defer src.Close()

	if err := validation.ValidateFile(fileHeader, src, "asset_image"); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), apperrors.ErrBadRequest, nil), c.logger)
	}

	result, err := c.service.UploadImage(ctx.Request().Context(), id, src, fileHeader.Filename)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Imagen cargada", http.StatusOK)
}

type ManufacturerController struct {
	crudController[dto.CreateManufacturerDTO, dto.UpdateManufacturerDTO, dto.ManufacturerDTO]
	service services.ManufacturerServiceInterface
}

func NewManufacturerController(service services.ManufacturerServiceInterface, logger *zap.Logger) *ManufacturerController {
	return &ManufacturerController{
		crudController: newCrudController[dto.CreateManufacturerDTO, dto.UpdateManufacturerDTO, dto.ManufacturerDTO](service, logger, messages{
			listed:  "Lista de fabricantes obtenida",
			found:   "Fabricante encontrado",
			created: "Fabricante creado",
			updated: "Fabricante actualizado",
			deleted: "Fabricante eliminado",
		}),
		service: service,
	}
}

func (c *ManufacturerController) ListWithModels(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	items, total, err := c.service.ListWithModels(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de fabricantes con modelos obtenida", http.StatusOK, total)
}

func (c *ManufacturerController) ListModels(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListModels(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de modelos obtenida", http.StatusOK)
}

type ModelController struct {
	crudController[dto.CreateModelDTO, dto.UpdateModelDTO, dto.ModelDetailDTO]
}

func NewModelController(service services.ModelServiceInterface, logger *zap.Logger) *ModelController {
	return &ModelController{
		crudController: newCrudController[dto.CreateModelDTO, dto.UpdateModelDTO, dto.ModelDetailDTO](service, logger, messages{
			listed:  "Lista de modelos obtenida",
			found:   "Modelo encontrado",
			created: "Modelo creado",
			updated: "Modelo actualizado",
			deleted: "Modelo eliminado",
		}, "fabricante_id"),
	}
}

type EquipmentController struct {
	crudController[dto.CreateEquipmentDTO, dto.UpdateEquipmentDTO, dto.EquipmentDetailDTO]
	service services.EquipmentServiceInterface
}

func NewEquipmentController(service services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		crudController: newCrudController[dto.CreateEquipmentDTO, dto.UpdateEquipmentDTO, dto.EquipmentDetailDTO](service, logger, messages{
			listed:  "Lista de equipos obtenida",
			found:   "Equipo encontrado",
			created: "Equipo creado",
			updated: "Equipo actualizado",
			deleted: "Equipo eliminado",
		}, "subsistema_id", "tipo_activo_id", "fabricante_id", "modelo_id"),
		service: service,
	}
}

func (c *EquipmentController) Filter(ctx echo.Context) error {
	var f dto.EquipmentFilterDTO
	if err := bindQuery(ctx, &f); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.FilterEquipment(ctx.Request().Context(), f)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de equipos obtenida", http.StatusOK)
}
