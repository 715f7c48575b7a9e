package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const plantTable = "planta"

var plantMap = map[string]string{
	"id":          "p.id",
	"nombre":      "p.nombre",
	"municipio":   "p.municipio",
	"contrato_id": "p.contrato_id",
}

type PlantRepositoryInterface interface {
	CrudRepositoryInterface[entities.Plant]
	FindAll(ctx context.Context) ([]entities.Plant, error)
	FindByContract(ctx context.Context, contractID uint64) ([]entities.Plant, error)
}

type PlantRepository struct {
	crudRepository[entities.Plant]
}

func NewPlantRepository(storage *pgxpool.Pool, logger *zap.Logger) PlantRepositoryInterface {
	return &PlantRepository{newCrud(storage, logger, tableSpec[entities.Plant]{
		name:    plantTable,
		alias:   "p",
		columns: []string{"p.id", "p.nombre", "p.descripcion", "p.municipio", "p.localizacion", "p.contrato_id"},
		fields:  plantMap,
		search:  []string{"p.nombre", "p.municipio"},
		scan: func(row pgx.Row) (*entities.Plant, error) {
			var p entities.Plant
			if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Municipality, &p.Location, &p.ContractID); err != nil {
				return nil, scanErr("planta", err)
			}
			return &p, nil
		},
		values: func(e *entities.Plant) map[string]interface{} {
			return map[string]interface{}{
				"nombre":       e.Name,
				"descripcion":  nullable(e.Description),
				"municipio":    e.Municipality,
				"localizacion": nullable(e.Location),
				"contrato_id":  e.ContractID,
			}
		},
	})}
}

func (r *PlantRepository) FindAll(ctx context.Context) ([]entities.Plant, error) {
	return r.findAll(ctx, nil)
}

func (r *PlantRepository) FindByContract(ctx context.Context, contractID uint64) ([]entities.Plant, error) {
	return r.findAll(ctx, sq.Eq{"p.contrato_id": contractID})
}
