package routes

import (
	"github.com/labstack/echo/v4"

	"game-api/internal/controllers"
)

func runOperationsRouter(
	secureGroup *echo.Group,
	positionCtrl *controllers.PositionController,
	personCtrl *controllers.PersonController,
	activityCtrl *controllers.ActivityController,
	resumeCtrl *controllers.ResumeController,
	staff, maintenance []echo.MiddlewareFunc,
) {
	secureGroup.GET("/cargos", positionCtrl.List, staff...)
	secureGroup.GET("/cargos/:id", positionCtrl.Get, staff...)
	secureGroup.GET("/cargos/:id/personas", positionCtrl.ListPersons, staff...)
	secureGroup.POST("/cargos", positionCtrl.Create, staff...)
	secureGroup.PUT("/cargos/:id", positionCtrl.Update, staff...)
	secureGroup.DELETE("/cargos/:id", positionCtrl.Delete, staff...)

	secureGroup.GET("/personas", personCtrl.List, staff...)
	secureGroup.GET("/personas/:id", personCtrl.Get, staff...)
	secureGroup.POST("/personas", personCtrl.Create, staff...)
	secureGroup.PUT("/personas/:id", personCtrl.Update, staff...)
	secureGroup.DELETE("/personas/:id", personCtrl.Delete, staff...)

	secureGroup.GET("/actividades", activityCtrl.List, maintenance...)
	secureGroup.GET("/actividades/detalladas", activityCtrl.ListDetailed, maintenance...)
	secureGroup.GET("/actividades/exportar", activityCtrl.Export, maintenance...)
	secureGroup.GET("/actividades/:id", activityCtrl.Get, maintenance...)
	secureGroup.POST("/actividades", activityCtrl.Create, maintenance...)
	secureGroup.PUT("/actividades/:id", activityCtrl.Update, maintenance...)
	secureGroup.DELETE("/actividades/:id", activityCtrl.Delete, maintenance...)

	secureGroup.GET("/verificar_cv/:persona_id", resumeCtrl.Exists, staff...)
	secureGroup.POST("/upload_cv/:persona_id", resumeCtrl.Upload, staff...)
	secureGroup.GET("/listar_cvs", resumeCtrl.List, staff...)
	secureGroup.POST("/indexar_cvs", resumeCtrl.Index, staff...)
	secureGroup.POST("/consultar", resumeCtrl.Ask, staff...)
}
