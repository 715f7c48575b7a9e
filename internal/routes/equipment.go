package routes

import (
	"github.com/labstack/echo/v4"

	"game-api/internal/controllers"
)

func runEquipmentRouter(
	secureGroup *echo.Group,
	assetTypeCtrl *controllers.AssetTypeController,
	manufacturerCtrl *controllers.ManufacturerController,
	modelCtrl *controllers.ModelController,
	equipmentCtrl *controllers.EquipmentController,
	access []echo.MiddlewareFunc,
) {
	secureGroup.GET("/tipos-activo", assetTypeCtrl.List, access...)
	secureGroup.GET("/tipos-activo/:id", assetTypeCtrl.Get, access...)
	secureGroup.POST("/tipos-activo", assetTypeCtrl.Create, access...)
	secureGroup.PUT("/tipos-activo/:id", assetTypeCtrl.Update, access...)
	secureGroup.DELETE("/tipos-activo/:id", assetTypeCtrl.Delete, access...)
	secureGroup.POST("/tipos-activo/:id/imagen", assetTypeCtrl.UploadImage, access...)

	secureGroup.GET("/fabricantes", manufacturerCtrl.List, access...)
	secureGroup.GET("/fabricantes/with-modelos", manufacturerCtrl.ListWithModels, access...)
	secureGroup.GET("/fabricantes/:id", manufacturerCtrl.Get, access...)
	secureGroup.GET("/fabricantes/:id/modelos", manufacturerCtrl.ListModels, access...)
	secureGroup.POST("/fabricantes", manufacturerCtrl.Create, access...)
	secureGroup.PUT("/fabricantes/:id", manufacturerCtrl.Update, access...)
	secureGroup.DELETE("/fabricantes/:id", manufacturerCtrl.Delete, access...)

	secureGroup.GET("/modelos", modelCtrl.List, access...)
	secureGroup.GET("/modelos/:id", modelCtrl.Get, access...)
	secureGroup.POST("/modelos", modelCtrl.Create, access...)
	secureGroup.PUT("/modelos/:id", modelCtrl.Update, access...)
	secureGroup.DELETE("/modelos/:id", modelCtrl.Delete, access...)

	secureGroup.GET("/equipos", equipmentCtrl.List, access...)
	secureGroup.GET("/equipos/filtrar", equipmentCtrl.Filter, access...)
	secureGroup.GET("/equipos/:id", equipmentCtrl.Get, access...)
	secureGroup.POST("/equipos", equipmentCtrl.Create, access...)
	secureGroup.PUT("/equipos/:id", equipmentCtrl.Update, access...)
	secureGroup.DELETE("/equipos/:id", equipmentCtrl.Delete, access...)
}
