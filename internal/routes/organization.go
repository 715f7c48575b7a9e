package routes

import (
	"github.com/labstack/echo/v4"

	"game-api/internal/controllers"
)

func runOrganizationRouter(
	secureGroup *echo.Group,
	plantCtrl *controllers.PlantController,
	systemCtrl *controllers.SystemController,
	subsystemCtrl *controllers.SubsystemController,
	access []echo.MiddlewareFunc,
) {
	secureGroup.GET("/plantas", plantCtrl.List, access...)
	secureGroup.GET("/plantas/:id", plantCtrl.Get, access...)
	secureGroup.GET("/plantas/:id/sistemas", plantCtrl.ListSystems, access...)
	secureGroup.GET("/plantas/:id/jerarquia", plantCtrl.PlantHierarchy, access...)
	secureGroup.POST("/plantas", plantCtrl.Create, access...)
	secureGroup.PUT("/plantas/:id", plantCtrl.Update, access...)
	secureGroup.DELETE("/plantas/:id", plantCtrl.Delete, access...)
	secureGroup.GET("/plantas_jerarquia", plantCtrl.Hierarchy, access...)

	secureGroup.GET("/sistemas", systemCtrl.List, access...)
	secureGroup.GET("/sistemas/:id", systemCtrl.Get, access...)
	secureGroup.GET("/sistemas/:id/subsistemas", systemCtrl.ListSubsystems, access...)
	secureGroup.POST("/sistemas", systemCtrl.Create, access...)
	secureGroup.PUT("/sistemas/:id", systemCtrl.Update, access...)
	secureGroup.DELETE("/sistemas/:id", systemCtrl.Delete, access...)

	secureGroup.GET("/subsistemas", subsystemCtrl.List, access...)
	secureGroup.GET("/subsistemas/:id", subsystemCtrl.Get, access...)
	secureGroup.GET("/subsistemas/:id/equipos", subsystemCtrl.ListEquipment, access...)
	secureGroup.POST("/subsistemas", subsystemCtrl.Create, access...)
	secureGroup.PUT("/subsistemas/:id", subsystemCtrl.Update, access...)
	secureGroup.DELETE("/subsistemas/:id", subsystemCtrl.Delete, access...)
}
