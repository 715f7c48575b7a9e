package routes

import (
	"github.com/labstack/echo/v4"

	"game-api/internal/controllers"
)

func runToolsRouter(
	secureGroup *echo.Group,
	bulkCtrl *controllers.BulkUploadController,
	procedureCtrl *controllers.ProcedureController,
	admin, maintenance []echo.MiddlewareFunc,
) {
	secureGroup.POST("/cargue_masivo/:tabla", bulkCtrl.Upload, admin...)
	secureGroup.POST("/generar-procedimiento", procedureCtrl.Generate, maintenance...)
}
