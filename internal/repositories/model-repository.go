package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const modelTable = "modelo"

var modelMap = map[string]string{
	"id":            "m.id",
	"nombre":        "m.nombre",
	"fabricante_id": "m.fabricante_id",
}

type ModelRepositoryInterface interface {
	CrudRepositoryInterface[entities.EquipmentModel]
	FindByManufacturers(ctx context.Context, manufacturerIDs []uint64) ([]entities.EquipmentModel, error)
}

type ModelRepository struct {
	crudRepository[entities.EquipmentModel]
}

func NewModelRepository(storage *pgxpool.Pool, logger *zap.Logger) ModelRepositoryInterface {
	return &ModelRepository{newCrud(storage, logger, tableSpec[entities.EquipmentModel]{
		name:  modelTable,
		alias: "m",
		columns: []string{
			"m.id", "m.nombre", "m.fabricante_id",
			"COALESCE(f.id, 0)", "COALESCE(f.nombre, '')",
		},
		joins:  []string{"fabricante f ON f.id = m.fabricante_id"},
		fields: modelMap,
		search: []string{"m.nombre"},
		scan:   scanModel,
		values: func(e *entities.EquipmentModel) map[string]interface{} {
			return map[string]interface{}{"nombre": e.Name, "fabricante_id": e.ManufacturerID}
		},
	})}
}

func scanModel(row pgx.Row) (*entities.EquipmentModel, error) {
	var m entities.EquipmentModel
	var f entities.Manufacturer
	if err := row.Scan(&m.ID, &m.Name, &m.ManufacturerID, &f.ID, &f.Name); err != nil {
		return nil, scanErr("modelo", err)
	}
	if f.ID > 0 {
		m.Manufacturer = &f
	}
	return &m, nil
}

func (r *ModelRepository) FindByManufacturers(ctx context.Context, manufacturerIDs []uint64) ([]entities.EquipmentModel, error) {
	if len(manufacturerIDs) == 0 {
		return []entities.EquipmentModel{}, nil
	}
	return r.findAll(ctx, sq.Eq{"m.fabricante_id": manufacturerIDs})
}
