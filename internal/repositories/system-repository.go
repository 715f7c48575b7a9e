package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const systemTable = "sistema"

var systemMap = map[string]string{
	"id":        "s.id",
	"codigo":    "s.codigo",
	"nombre":    "s.nombre",
	"planta_id": "s.planta_id",
}

type SystemRepositoryInterface interface {
	CrudRepositoryInterface[entities.System]
	FindByPlants(ctx context.Context, plantIDs []uint64) ([]entities.System, error)
	FindAll(ctx context.Context) ([]entities.System, error)
}

type SystemRepository struct {
	crudRepository[entities.System]
}

func NewSystemRepository(storage *pgxpool.Pool, logger *zap.Logger) SystemRepositoryInterface {
	return &SystemRepository{newCrud(storage, logger, tableSpec[entities.System]{
		name:    systemTable,
		alias:   "s",
		columns: []string{"s.id", "s.codigo", "s.nombre", "s.descripcion", "s.planta_id"},
		fields:  systemMap,
		search:  []string{"s.codigo", "s.nombre"},
		scan: func(row pgx.Row) (*entities.System, error) {
			var s entities.System
			if err := row.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &s.PlantID); err != nil {
				return nil, scanErr("sistema", err)
			}
			return &s, nil
		},
		values: func(e *entities.System) map[string]interface{} {
			return map[string]interface{}{
				"codigo":      e.Code,
				"nombre":      e.Name,
				"descripcion": nullable(e.Description),
				"planta_id":   e.PlantID,
			}
		},
	})}
}

func (r *SystemRepository) FindByPlants(ctx context.Context, plantIDs []uint64) ([]entities.System, error) {
	if len(plantIDs) == 0 {
		return []entities.System{}, nil
	}
	return r.findAll(ctx, sq.Eq{"s.planta_id": plantIDs})
}

func (r *SystemRepository) FindAll(ctx context.Context) ([]entities.System, error) {
	return r.findAll(ctx, nil)
}
