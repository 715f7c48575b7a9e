package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/services"
	"game-api/pkg/utils"
)

type ClientController struct {
	crudController[dto.CreateClientDTO, dto.UpdateClientDTO, dto.ClientDTO]
	service services.ClientServiceInterface
}

func NewClientController(service services.ClientServiceInterface, logger *zap.Logger) *ClientController {
	return &ClientController{
		crudController: newCrudController[dto.CreateClientDTO, dto.UpdateClientDTO, dto.ClientDTO](service, logger, messages{
			listed:  "Lista de clientes obtenida",
			found:   "Cliente encontrado",
			created: "Cliente creado",
			updated: "Cliente actualizado",
			deleted: "Cliente eliminado",
		}),
		service: service,
	}
}

func (c *ClientController) ListWithContracts(ctx echo.Context) error {
	items, err := c.service.ListWithContracts(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de clientes con contratos obtenida", http.StatusOK)
}

func (c *ClientController) GetWithContracts(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetWithContracts(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Cliente encontrado", http.StatusOK)
}

func (c *ClientController) ListContracts(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListContracts(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de contratos obtenida", http.StatusOK)
}

func (c *ClientController) LinkContract(ctx echo.Context) error {
	ids, err := parseIDs(ctx, "id", "contrato_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.LinkContract(ctx.Request().Context(), ids[0], ids[1])
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Contrato asociado al cliente", http.StatusOK)
}

func (c *ClientController) UnlinkContract(ctx echo.Context) error {
	ids, err := parseIDs(ctx, "id", "contrato_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.UnlinkContract(ctx.Request().Context(), ids[0], ids[1]); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.DeletedDTO{OK: true}, "Contrato desvinculado del cliente", http.StatusOK)
}

type ContractController struct {
	crudController[dto.CreateContractDTO, dto.UpdateContractDTO, dto.ContractDTO]
	service services.ContractServiceInterface
}

func NewContractController(service services.ContractServiceInterface, logger *zap.Logger) *ContractController {
	return &ContractController{
		crudController: newCrudController[dto.CreateContractDTO, dto.UpdateContractDTO, dto.ContractDTO](service, logger, messages{
			listed:  "Lista de contratos obtenida",
			found:   "Contrato encontrado",
			created: "Contrato creado",
			updated: "Contrato actualizado",
			deleted: "Contrato eliminado",
		}, "cliente_id"),
		service: service,
	}
}

func (c *ContractController) ListByUser(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "usuario_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListByUser(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de contratos del usuario obtenida", http.StatusOK)
}

func (c *ContractController) GetWithPlants(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetWithPlants(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Contrato encontrado", http.StatusOK)
}

func (c *ContractController) ListUsers(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListUsers(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de usuarios del contrato obtenida", http.StatusOK)
}

func (c *ContractController) LinkUser(ctx echo.Context) error {
	ids, err := parseIDs(ctx, "id", "contrato_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.LinkUser(ctx.Request().Context(), ids[0], ids[1])
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Usuario asociado al contrato", http.StatusCreated)
}

func (c *ContractController) UnlinkUser(ctx echo.Context) error {
	ids, err := parseIDs(ctx, "id", "contrato_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.UnlinkUser(ctx.Request().Context(), ids[0], ids[1]); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.DeletedDTO{OK: true}, "Usuario desvinculado del contrato", http.StatusOK)
}
