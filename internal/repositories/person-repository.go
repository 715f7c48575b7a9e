package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const personTable = "persona"

var personMap = map[string]string{
	"identificacion": "pe.identificacion",
	"nombres":        "pe.nombres",
	"cargo_id":       "pe.cargo_id",
}

type PersonRepositoryInterface interface {
	CrudRepositoryInterface[entities.Person]
	FindByPosition(ctx context.Context, positionID uint64) ([]entities.Person, error)
}

type PersonRepository struct {
	crudRepository[entities.Person]
}

func NewPersonRepository(storage *pgxpool.Pool, logger *zap.Logger) PersonRepositoryInterface {
	return &PersonRepository{newCrud(storage, logger, tableSpec[entities.Person]{
		name:      personTable,
		alias:     "pe",
		pk:        "identificacion",
		columns:   []string{"pe.identificacion", "pe.nombres", "pe.cargo_id"},
		fields:    personMap,
		search:    []string{"pe.nombres"},
		clientKey: true,
		key:       func(e *entities.Person) uint64 { return e.ID },
		scan: func(row pgx.Row) (*entities.Person, error) {
			var p entities.Person
			if err := row.Scan(&p.ID, &p.Name, &p.PositionID); err != nil {
				return nil, scanErr("persona", err)
			}
			return &p, nil
		},
		values: func(e *entities.Person) map[string]interface{} {
			return map[string]interface{}{"nombres": e.Name, "cargo_id": nullable(e.PositionID)}
		},
	})}
}

func (r *PersonRepository) FindByPosition(ctx context.Context, positionID uint64) ([]entities.Person, error) {
	return r.findAll(ctx, sq.Eq{"pe.cargo_id": positionID})
}
