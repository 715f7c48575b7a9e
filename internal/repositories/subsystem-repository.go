package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const subsystemTable = "subsistema"

var subsystemMap = map[string]string{
	"id":         "ss.id",
	"codigo":     "ss.codigo",
	"nombre":     "ss.nombre",
	"sistema_id": "ss.sistema_id",
}

type SubsystemRepositoryInterface interface {
	CrudRepositoryInterface[entities.Subsystem]
	FindBySystems(ctx context.Context, systemIDs []uint64) ([]entities.Subsystem, error)
	FindAll(ctx context.Context) ([]entities.Subsystem, error)
}

type SubsystemRepository struct {
	crudRepository[entities.Subsystem]
}

func NewSubsystemRepository(storage *pgxpool.Pool, logger *zap.Logger) SubsystemRepositoryInterface {
	return &SubsystemRepository{newCrud(storage, logger, tableSpec[entities.Subsystem]{
		name:    subsystemTable,
		alias:   "ss",
		columns: []string{"ss.id", "ss.codigo", "ss.nombre", "ss.descripcion", "ss.sistema_id"},
		fields:  subsystemMap,
		search:  []string{"ss.codigo", "ss.nombre"},
		scan: func(row pgx.Row) (*entities.Subsystem, error) {
			var s entities.Subsystem
			if err := row.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &s.SystemID); err != nil {
				return nil, scanErr("subsistema", err)
			}
			return &s, nil
		},
		values: func(e *entities.Subsystem) map[string]interface{} {
			return map[string]interface{}{
				"codigo":      e.Code,
				"nombre":      e.Name,
				"descripcion": nullable(e.Description),
				"sistema_id":  e.SystemID,
			}
		},
	})}
}

func (r *SubsystemRepository) FindBySystems(ctx context.Context, systemIDs []uint64) ([]entities.Subsystem, error) {
	if len(systemIDs) == 0 {
		return []entities.Subsystem{}, nil
	}
	return r.findAll(ctx, sq.Eq{"ss.sistema_id": systemIDs})
}

func (r *SubsystemRepository) FindAll(ctx context.Context) ([]entities.Subsystem, error) {
	return r.findAll(ctx, nil)
}
