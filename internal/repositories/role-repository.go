package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const roleTable = "rol"

var roleMap = map[string]string{
	"id":          "r.id",
	"descripcion": "r.descripcion",
}

type RoleRepositoryInterface interface {
	CrudRepositoryInterface[entities.Role]
}

type RoleRepository struct {
	crudRepository[entities.Role]
}

func NewRoleRepository(storage *pgxpool.Pool, logger *zap.Logger) RoleRepositoryInterface {
	return &RoleRepository{newCrud(storage, logger, tableSpec[entities.Role]{
		name:    roleTable,
		alias:   "r",
		columns: []string{"r.id", "r.descripcion"},
		fields:  roleMap,
		search:  []string{"r.descripcion"},
		scan: func(row pgx.Row) (*entities.Role, error) {
			var r entities.Role
			if err := row.Scan(&r.ID, &r.Description); err != nil {
				return nil, scanErr("rol", err)
			}
			return &r, nil
		},
		values: func(e *entities.Role) map[string]interface{} {
			return map[string]interface{}{"descripcion": e.Description}
		},
	})}
}
