package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const manufacturerTable = "fabricante"

var manufacturerMap = map[string]string{
	"id":     "f.id",
	"nombre": "f.nombre",
}

type ManufacturerRepositoryInterface interface {
	CrudRepositoryInterface[entities.Manufacturer]
}

type ManufacturerRepository struct {
	crudRepository[entities.Manufacturer]
}

func NewManufacturerRepository(storage *pgxpool.Pool, logger *zap.Logger) ManufacturerRepositoryInterface {
	return &ManufacturerRepository{newCrud(storage, logger, tableSpec[entities.Manufacturer]{
		name:    manufacturerTable,
		alias:   "f",
		columns: []string{"f.id", "f.nombre"},
		fields:  manufacturerMap,
		search:  []string{"f.nombre"},
		scan: func(row pgx.Row) (*entities.Manufacturer, error) {
			var m entities.Manufacturer
			if err := row.Scan(&m.ID, &m.Name); err != nil {
				return nil, scanErr("fabricante", err)
			}
			return &m, nil
		},
		values: func(e *entities.Manufacturer) map[string]interface{} {
			return map[string]interface{}{"nombre": e.Name}
		},
	})}
}
