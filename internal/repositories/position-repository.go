package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const positionTable = "cargo"

var positionMap = map[string]string{
	"id":          "c.id",
	"descripcion": "c.descripcion",
}

type PositionRepositoryInterface interface {
	CrudRepositoryInterface[entities.Position]
}

type PositionRepository struct {
	crudRepository[entities.Position]
}

func NewPositionRepository(storage *pgxpool.Pool, logger *zap.Logger) PositionRepositoryInterface {
	return &PositionRepository{newCrud(storage, logger, tableSpec[entities.Position]{
		name:    positionTable,
		alias:   "c",
		columns: []string{"c.id", "c.descripcion"},
		fields:  positionMap,
		search:  []string{"c.descripcion"},
		scan: func(row pgx.Row) (*entities.Position, error) {
			var p entities.Position
			if err := row.Scan(&p.ID, &p.Description); err != nil {
				return nil, scanErr("cargo", err)
			}
			return &p, nil
		},
		values: func(e *entities.Position) map[string]interface{} {
			return map[string]interface{}{"descripcion": e.Description}
		},
	})}
}
