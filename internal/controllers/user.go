package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/services"
	"game-api/pkg/utils"
)

type UserController struct {
	crudController[dto.CreateUserDTO, dto.UpdateUserDTO, dto.UserDTO]
	service services.UserServiceInterface
}

func NewUserController(service services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{
		crudController: newCrudController[dto.CreateUserDTO, dto.UpdateUserDTO, dto.UserDTO](service, logger, messages{
			listed:  "Lista de usuarios obtenida",
			found:   "Usuario encontrado",
			created: "Usuario creado",
			updated: "Usuario actualizado",
			deleted: "Usuario eliminado",
		}, "rol_id"),
		service: service,
	}
}

func (c *UserController) GetByUsername(ctx echo.Context) error {
	result, err := c.service.GetByUsername(ctx.Request().Context(), ctx.Param("username"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Usuario encontrado", http.StatusOK)
}

func (c *UserController) SetRole(ctx echo.Context) error {
	ids, err := parseIDs(ctx, "id", "rol_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.SetRole(ctx.Request().Context(), ids[0], ids[1])
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Rol asignado al usuario", http.StatusOK)
}

type RoleController struct {
	crudController[dto.CreateRoleDTO, dto.UpdateRoleDTO, dto.RoleDTO]
	service services.RoleServiceInterface
}

func NewRoleController(service services.RoleServiceInterface, logger *zap.Logger) *RoleController {
	return &RoleController{
		crudController: newCrudController[dto.CreateRoleDTO, dto.UpdateRoleDTO, dto.RoleDTO](service, logger, messages{
			listed:  "Lista de roles obtenida",
			found:   "Rol encontrado",
			created: "Rol creado",
			updated: "Rol actualizado",
			deleted: "Rol eliminado",
		}),
		service: service,
	}
}

func (c *RoleController) GetWithApplications(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetWithApplications(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Rol encontrado", http.StatusOK)
}

func (c *RoleController) ListUsers(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListUsers(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de usuarios del rol obtenida", http.StatusOK)
}

func (c *RoleController) LinkApplication(ctx echo.Context) error {
	ids, err := parseIDs(ctx, "id", "aplicacion_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.LinkApplication(ctx.Request().Context(), ids[0], ids[1])
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Aplicación asignada al rol", http.StatusCreated)
}

func (c *RoleController) UnlinkApplication(ctx echo.Context) error {
	ids, err := parseIDs(ctx, "id", "aplicacion_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.UnlinkApplication(ctx.Request().Context(), ids[0], ids[1]); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.DeletedDTO{OK: true}, "Aplicación retirada del rol", http.StatusOK)
}

type ApplicationController struct {
	crudController[dto.CreateApplicationDTO, dto.UpdateApplicationDTO, dto.ApplicationDTO]
	service services.ApplicationServiceInterface
}

func NewApplicationController(service services.ApplicationServiceInterface, logger *zap.Logger) *ApplicationController {
	return &ApplicationController{
		crudController: newCrudController[dto.CreateApplicationDTO, dto.UpdateApplicationDTO, dto.ApplicationDTO](service, logger, messages{
			listed:  "Lista de aplicaciones obtenida",
			found:   "Aplicación encontrada",
			created: "Aplicación creada",
			updated: "Aplicación actualizada",
			deleted: "Aplicación eliminada",
		}),
		service: service,
	}
}

func (c *ApplicationController) ListByRole(ctx echo.Context) error {
	id, err := utils.ParseID(ctx, "rol_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.service.ListByRole(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Lista de aplicaciones del rol obtenida", http.StatusOK)
}
