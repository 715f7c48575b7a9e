package routes

import (
	"github.com/labstack/echo/v4"

	"game-api/internal/controllers"
)

func runBusinessRouter(
	secureGroup *echo.Group,
	clientCtrl *controllers.ClientController,
	contractCtrl *controllers.ContractController,
	access []echo.MiddlewareFunc,
) {
	secureGroup.GET("/clientes", clientCtrl.List, access...)
	secureGroup.GET("/clientes/with-contratos", clientCtrl.ListWithContracts, access...)
	secureGroup.GET("/clientes/:id", clientCtrl.Get, access...)
	secureGroup.GET("/clientes/:id/with-contratos", clientCtrl.GetWithContracts, access...)
	secureGroup.GET("/clientes/:id/contratos", clientCtrl.ListContracts, access...)
	secureGroup.POST("/clientes/:id/contratos/:contrato_id", clientCtrl.LinkContract, access...)
	secureGroup.DELETE("/clientes/:id/contratos/:contrato_id", clientCtrl.UnlinkContract, access...)
	secureGroup.POST("/clientes", clientCtrl.Create, access...)
	secureGroup.PUT("/clientes/:id", clientCtrl.Update, access...)
	secureGroup.DELETE("/clientes/:id", clientCtrl.Delete, access...)

	secureGroup.GET("/contratos", contractCtrl.List, access...)
	secureGroup.GET("/contratos/by-usuario/:usuario_id", contractCtrl.ListByUser, access...)
	secureGroup.GET("/contratos/:id", contractCtrl.Get, access...)
	secureGroup.GET("/contratos/:id/with-plantas", contractCtrl.GetWithPlants, access...)
	secureGroup.GET("/contratos/:id/usuarios", contractCtrl.ListUsers, access...)
	secureGroup.POST("/contratos", contractCtrl.Create, access...)
	secureGroup.PUT("/contratos/:id", contractCtrl.Update, access...)
	secureGroup.DELETE("/contratos/:id", contractCtrl.Delete, access...)

	secureGroup.POST("/usuarios/:id/contratos/:contrato_id", contractCtrl.LinkUser, access...)
	secureGroup.DELETE("/usuarios/:id/contratos/:contrato_id", contractCtrl.UnlinkUser, access...)
}
