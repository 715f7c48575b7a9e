package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const activityTable = "actividad"

var activityMap = map[string]string{
	"id":         "a.id",
	"fecha":      "a.fecha",
	"equipo_id":  "a.equipo_id",
	"persona_id": "a.persona_id",
}

type ActivityRepositoryInterface interface {
	CrudRepositoryInterface[entities.Activity]
	FindDetailed(ctx context.Context, filter entities.ActivityDetailFilter) ([]entities.ActivityDetail, error)
}

type ActivityRepository struct {
	crudRepository[entities.Activity]
}

func NewActivityRepository(storage *pgxpool.Pool, logger *zap.Logger) ActivityRepositoryInterface {
	return &ActivityRepository{newCrud(storage, logger, tableSpec[entities.Activity]{
		name:    activityTable,
		alias:   "a",
		columns: []string{"a.id", "a.descripcion", "a.fecha", "a.equipo_id", "a.persona_id"},
		fields:  activityMap,
		search:  []string{"a.descripcion"},
		scan: func(row pgx.Row) (*entities.Activity, error) {
			var a entities.Activity
			if err := row.Scan(&a.ID, &a.Description, &a.Date, &a.EquipmentID, &a.PersonID); err != nil {
				return nil, scanErr("actividad", err)
			}
			return &a, nil
		},
		values: func(e *entities.Activity) map[string]interface{} {
			return map[string]interface{}{
				"descripcion": e.Description,
				"fecha":       e.Date,
				"equipo_id":   e.EquipmentID,
				"persona_id":  e.PersonID,
			}
		},
	})}
}

// FindDetailed joins person, position and equipment names, ordered by date.
func (r *ActivityRepository) FindDetailed(ctx context.Context, filter entities.ActivityDetailFilter) ([]entities.ActivityDetail, error) {
	b := psql.Select("a.id", "a.fecha", "a.descripcion", "pe.nombres", "c.descripcion", "e.nombre").
		From("actividad AS a").
		Join("persona pe ON pe.identificacion = a.persona_id").
		LeftJoin("cargo c ON c.id = pe.cargo_id").
		Join("equipo e ON e.id = a.equipo_id").
		OrderBy("a.fecha ASC", "a.id ASC")

	if filter.From != nil {
		b = b.Where(sq.GtOrEq{"a.fecha": *filter.From})
	}
	if filter.To != nil {
		b = b.Where(sq.LtOrEq{"a.fecha": *filter.To})
	}
	if filter.PersonID != nil {
		b = b.Where(sq.Eq{"a.persona_id": *filter.PersonID})
	}
	if filter.EquipmentID != nil {
		b = b.Where(sq.Eq{"a.equipo_id": *filter.EquipmentID})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	items := make([]entities.ActivityDetail, 0)
	for rows.Next() {
		var d entities.ActivityDetail
		if err := rows.Scan(&d.ID, &d.Date, &d.Description, &d.PersonName, &d.PositionName, &d.EquipmentName); err != nil {
			return nil, scanErr("actividad", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
