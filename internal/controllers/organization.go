package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/services"
	"game-api/pkg/utils"
)

type PlantController struct {
	crudController[dto.CreatePlantDTO, dto.UpdatePlantDTO, dto.PlantDTO]
	service   services.PlantServiceInterface
	hierarchy services.HierarchyServiceInterface
}

func NewPlantController(
	service services.PlantServiceInterface,
	hierarchy services.HierarchyServiceInterface,
	logger *zap.Logger,
) *PlantController {
	return &PlantController{
		crudController: newCrudController[dto.CreatePlantDTO, dto.UpdatePlantDTO, dto.PlantDTO](service, logger, messages{
			listed:  "Lista de plantas obtenida",
			found:   "Planta encontrada",
			created: "Planta creada",
			updated: "Planta actualizada",
			deleted: "Planta eliminada",
		}, "contrato_id"),
		service:   service,
		hierarchy: hierarchy,
	}
}

func (c *PlantController) ListSystems(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListSystems(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de sistemas obtenida", http.StatusOK)
}

// Hierarchy returns every plant with its systems, subsystems and equipment.
func (c *PlantController) Hierarchy(ctx echo.Context) error {
	items, err := c.hierarchy.GetAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Jerarquía de plantas obtenida", http.StatusOK)
}

func (c *PlantController) PlantHierarchy(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.hierarchy.GetPlant(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Jerarquía de la planta obtenida", http.StatusOK)
}

type SystemController struct {
	crudController[dto.CreateSystemDTO, dto.UpdateSystemDTO, dto.SystemDTO]
	service services.SystemServiceInterface
}

func NewSystemController(service services.SystemServiceInterface, logger *zap.Logger) *SystemController {
	return &SystemController{
		crudController: newCrudController[dto.CreateSystemDTO, dto.UpdateSystemDTO, dto.SystemDTO](service, logger, messages{
			listed:  "Lista de sistemas obtenida",
			found:   "Sistema encontrado",
			created: "Sistema creado",
			updated: "Sistema actualizado",
			deleted: "Sistema eliminado",
		}, "planta_id"),
		service: service,
	}
}

func (c *SystemController) ListSubsystems(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListSubsystems(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de subsistemas obtenida", http.StatusOK)
}

type SubsystemController struct {
	crudController[dto.CreateSubsystemDTO, dto.UpdateSubsystemDTO, dto.SubsystemDTO]
	service services.SubsystemServiceInterface
}

func NewSubsystemController(service services.SubsystemServiceInterface, logger *zap.Logger) *SubsystemController {
	return &SubsystemController{
		crudController: newCrudController[dto.CreateSubsystemDTO, dto.UpdateSubsystemDTO, dto.SubsystemDTO](service, logger, messages{
			listed:  "Lista de subsistemas obtenida",
			found:   "Subsistema encontrado",
			created: "Subsistema creado",
			updated: "Subsistema actualizado",
			deleted: "Subsistema eliminado",
		}, "sistema_id"),
		service: service,
	}
}

func (c *SubsystemController) ListEquipment(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de equipos obtenida", http.StatusOK)
}
