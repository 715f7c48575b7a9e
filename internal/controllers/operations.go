package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/services"
	"game-api/pkg/utils"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PositionController struct {
	crudController[dto.CreatePositionDTO, dto.UpdatePositionDTO, dto.PositionDTO]
	service services.PositionServiceInterface
}

func NewPositionController(service services.PositionServiceInterface, logger *zap.Logger) *PositionController {
	return &PositionController{
		crudController: newCrudController[dto.CreatePositionDTO, dto.UpdatePositionDTO, dto.PositionDTO](service, logger, messages{
			listed:  "Lista de cargos obtenida",
			found:   "Cargo encontrado",
			created: "Cargo creado",
			updated: "Cargo actualizado",
			deleted: "Cargo eliminado",
		}),
		service: service,
	}
}

func (c *PositionController) ListPersons(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListPersons(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de personas del cargo obtenida", http.StatusOK)
}

type PersonController struct {
	crudController[dto.CreatePersonDTO, dto.UpdatePersonDTO, dto.PersonDTO]
}

func NewPersonController(service services.PersonServiceInterface, logger *zap.Logger) *PersonController {
	return &PersonController{
		crudController: newCrudController[dto.CreatePersonDTO, dto.UpdatePersonDTO, dto.PersonDTO](service, logger, messages{
			listed:  "Lista de personas obtenida",
			found:   "Persona encontrada",
			created: "Persona creada",
			updated: "Persona actualizada",
			deleted: "Persona eliminada",
		}, "cargo_id"),
	}
}

type ActivityController struct {
	crudController[dto.CreateActivityDTO, dto.UpdateActivityDTO, dto.ActivityDTO]
	service services.ActivityServiceInterface
}

func NewActivityController(service services.ActivityServiceInterface, logger *zap.Logger) *ActivityController {
	return &ActivityController{
		crudController: newCrudController[dto.CreateActivityDTO, dto.UpdateActivityDTO, dto.ActivityDTO](service, logger, messages{
			listed:  "Lista de actividades obtenida",
			found:   "Actividad encontrada",
			created: "Actividad creada",
			updated: "Actividad actualizada",
			deleted: "Actividad eliminada",
		}, "equipo_id", "persona_id"),
		service: service,
	}
}

func (c *ActivityController) ListDetailed(ctx echo.Context) error {
	var f dto.ActivityDetailFilterDTO
	if err := bindQuery(ctx, &f); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListDetailed(ctx.Request().Context(), f)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de actividades obtenida", http.StatusOK)
}

// Export streams the filtered activities as actividades.xlsx.
func (c *ActivityController) Export(ctx echo.Context) error {
	var f dto.ActivityDetailFilterDTO
	if err := bindQuery(ctx, &f); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	content, err := c.service.Export(ctx.Request().Context(), f)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=actividades.xlsx")
	return ctx.Blob(http.StatusOK, xlsxMIME, content)
}
