package repositories

import (
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const assetTypeTable = "tipoactivo"

var assetTypeMap = map[string]string{
	"id":          "ta.id",
	"descripcion": "ta.descripcion",
}

type AssetTypeRepositoryInterface interface {
	CrudRepositoryInterface[entities.AssetType]
}

type AssetTypeRepository struct {
	crudRepository[entities.AssetType]
}

func NewAssetTypeRepository(storage *pgxpool.Pool, logger *zap.Logger) AssetTypeRepositoryInterface {
	return &AssetTypeRepository{newCrud(storage, logger, tableSpec[entities.AssetType]{
		name:    assetTypeTable,
		alias:   "ta",
		columns: []string{"ta.id", "ta.descripcion", "ta.imagen"},
		fields:  assetTypeMap,
		search:  []string{"ta.descripcion"},
		scan:    scanAssetType,
		values: func(e *entities.AssetType) map[string]interface{} {
			return map[string]interface{}{"descripcion": e.Description, "imagen": nullable(e.Image)}
		},
	})}
}

func scanAssetType(row pgx.Row) (*entities.AssetType, error) {
	var t entities.AssetType
	var image sql.NullString
	if err := row.Scan(&t.ID, &t.Description, &image); err != nil {
		return nil, scanErr("tipo de activo", err)
	}
	if image.Valid {
		t.Image = &image.String
	}
	return &t, nil
}
