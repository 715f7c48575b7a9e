package routes

import (
	"github.com/labstack/echo/v4"

	"game-api/internal/controllers"
)

func runUserRouter(
	secureGroup *echo.Group,
	userCtrl *controllers.UserController,
	roleCtrl *controllers.RoleController,
	applicationCtrl *controllers.ApplicationController,
	access []echo.MiddlewareFunc,
) {
	secureGroup.GET("/usuarios", userCtrl.List, access...)
	secureGroup.GET("/usuarios/by-username/:username", userCtrl.GetByUsername, access...)
	secureGroup.GET("/usuarios/:id", userCtrl.Get, access...)
	secureGroup.POST("/usuarios", userCtrl.Create, access...)
	secureGroup.PUT("/usuarios/:id", userCtrl.Update, access...)
	secureGroup.DELETE("/usuarios/:id", userCtrl.Delete, access...)
	secureGroup.POST("/usuarios/:id/rol/:rol_id", userCtrl.SetRole, access...)

	secureGroup.GET("/roles", roleCtrl.List, access...)
	secureGroup.GET("/roles/:id", roleCtrl.Get, access...)
	secureGroup.GET("/roles/:id/with-aplicaciones", roleCtrl.GetWithApplications, access...)
	secureGroup.GET("/roles/:id/usuarios", roleCtrl.ListUsers, access...)
	secureGroup.POST("/roles/:id/aplicaciones/:aplicacion_id", roleCtrl.LinkApplication, access...)
	secureGroup.DELETE("/roles/:id/aplicaciones/:aplicacion_id", roleCtrl.UnlinkApplication, access...)
	secureGroup.POST("/roles", roleCtrl.Create, access...)
	secureGroup.PUT("/roles/:id", roleCtrl.Update, access...)
	secureGroup.DELETE("/roles/:id", roleCtrl.Delete, access...)

	secureGroup.GET("/aplicaciones", applicationCtrl.List, access...)
	secureGroup.GET("/aplicaciones/by-rol/:rol_id", applicationCtrl.ListByRole, access...)
	secureGroup.GET("/aplicaciones/:id", applicationCtrl.Get, access...)
	secureGroup.POST("/aplicaciones", applicationCtrl.Create, access...)
	secureGroup.PUT("/aplicaciones/:id", applicationCtrl.Update, access...)
	secureGroup.DELETE("/aplicaciones/:id", applicationCtrl.Delete, access...)
}
