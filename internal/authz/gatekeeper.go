package authz

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"game-api/pkg/contextkeys"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/utils"
)

// ApplicationLookup returns the names of the applications assigned to a role.
type ApplicationLookup func(ctx context.Context, roleID uint64) ([]string, error)

// Gatekeeper checks, after the auth middleware, that the caller's role holds an application.
type Gatekeeper struct {
	lookup ApplicationLookup
	logger *zap.Logger
}

func NewGatekeeper(lookup ApplicationLookup, logger *zap.Logger) *Gatekeeper {
	return &Gatekeeper{lookup: lookup, logger: logger}
}

func (g *Gatekeeper) Require(application string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			roleID, ok := ctx.Value(contextkeys.RoleIDKey).(uint64)
			if !ok || roleID == 0 {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, g.logger)
			}

			names, err := g.lookup(ctx, roleID)
			if err != nil {
				g.logger.Warn("Gatekeeper: no se pudieron leer las aplicaciones del rol",
					zap.Uint64("rol_id", roleID), zap.Error(err))
				return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden,
					apperrors.ErrForbidden.Error(), err, map[string]interface{}{"rol_id": roleID}), g.logger)
			}

			if !CanDo(application, NewContext(roleID, names)) {
				g.logger.Warn("Gatekeeper: acceso denegado",
					zap.Uint64("rol_id", roleID), zap.String("aplicacion", application))
				return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden,
					fmt.Sprintf("El rol no tiene acceso a la aplicación '%s'", application), apperrors.ErrForbidden, nil), g.logger)
			}
			return next(c)
		}
	}
}
