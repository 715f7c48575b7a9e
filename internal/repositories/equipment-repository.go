package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const equipmentTable = "equipo"

var equipmentMap = map[string]string{
	"id":             "e.id",
	"nombre":         "e.nombre",
	"ubicacion":      "e.ubicacion",
	"subsistema_id":  "e.subsistema_id",
	"tipo_activo_id": "e.tipo_activo_id",
	"fabricante_id":  "e.fabricante_id",
	"modelo_id":      "e.modelo_id",
}

type EquipmentRepositoryInterface interface {
	CrudRepositoryInterface[entities.Equipment]
	FindBySubsystems(ctx context.Context, subsystemIDs []uint64) ([]entities.Equipment, error)
	FindAll(ctx context.Context) ([]entities.Equipment, error)
}

type EquipmentRepository struct {
	crudRepository[entities.Equipment]
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{newCrud(storage, logger, tableSpec[entities.Equipment]{
		name:  equipmentTable,
		alias: "e",
		columns: []string{
			"e.id", "e.nombre", "e.ubicacion", "e.imagen",
			"e.subsistema_id", "e.tipo_activo_id", "e.fabricante_id", "e.modelo_id",
			"ss.id", "ss.codigo", "ss.nombre", "ss.descripcion", "ss.sistema_id",
			"ta.id", "ta.descripcion", "ta.imagen",
			"f.id", "f.nombre",
			"m.id", "m.nombre", "m.fabricante_id",
		},
		joins: []string{
			"subsistema ss ON ss.id = e.subsistema_id",
			"tipoactivo ta ON ta.id = e.tipo_activo_id",
			"fabricante f ON f.id = e.fabricante_id",
			"modelo m ON m.id = e.modelo_id",
		},
		fields: equipmentMap,
		search: []string{"e.nombre", "e.ubicacion"},
		scan:   scanEquipment,
		values: func(e *entities.Equipment) map[string]interface{} {
			return map[string]interface{}{
				"nombre":         e.Name,
				"ubicacion":      nullable(e.Location),
				"imagen":         nullable(e.Image),
				"subsistema_id":  e.SubsystemID,
				"tipo_activo_id": e.AssetTypeID,
				"fabricante_id":  nullable(e.ManufacturerID),
				"modelo_id":      nullable(e.ModelID),
			}
		},
	})}
}

// scanEquipment reads the equipment row and its LEFT JOINed relations.
func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var (
		ssID, ssSystemID, taID, fID, mID, mManufacturerID *uint64
		ssCode, ssName, ssDesc, taDesc, taImage               *string
		fName, mName                                          *string
	)

	err := row.Scan(
		&e.ID, &e.Name, &e.Location, &e.Image,
		&e.SubsystemID, &e.AssetTypeID, &e.ManufacturerID, &e.ModelID,
		&ssID, &ssCode, &ssName, &ssDesc, &ssSystemID,
		&taID, &taDesc, &taImage,
		&fID, &fName,
		&mID, &mName, &mManufacturerID,
	)
	if err != nil {
		return nil, scanErr("equipo", err)
	}

	if ssID != nil {
		e.Subsystem = &entities.Subsystem{ID: *ssID, Description: ssDesc}
		if ssCode != nil {
			e.Subsystem.Code = *ssCode
		}
		if ssName != nil {
			e.Subsystem.Name = *ssName
		}
		if ssSystemID != nil {
			e.Subsystem.SystemID = *ssSystemID
		}
	}
	if taID != nil {
		e.AssetType = &entities.AssetType{ID: *taID, Image: taImage}
		if taDesc != nil {
			e.AssetType.Description = *taDesc
		}
	}
	if fID != nil {
		e.Manufacturer = &entities.Manufacturer{ID: *fID}
		if fName != nil {
			e.Manufacturer.Name = *fName
		}
	}
	if mID != nil {
		e.Model = &entities.EquipmentModel{ID: *mID}
		if mName != nil {
			e.Model.Name = *mName
		}
		if mManufacturerID != nil {
			e.Model.ManufacturerID = *mManufacturerID
		}
	}

	return &e, nil
}

func (r *EquipmentRepository) FindBySubsystems(ctx context.Context, subsystemIDs []uint64) ([]entities.Equipment, error) {
	if len(subsystemIDs) == 0 {
		return []entities.Equipment{}, nil
	}
	return r.findAll(ctx, sq.Eq{"e.subsistema_id": subsystemIDs})
}

func (r *EquipmentRepository) FindAll(ctx context.Context) ([]entities.Equipment, error) {
	return r.findAll(ctx, nil)
}
