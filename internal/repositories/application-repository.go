package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
	apperrors "game-api/pkg/errors"
)

const (
	applicationTable     = "aplicacion"
	roleApplicationTable = "aplicacionrol"
)

var applicationMap = map[string]string{
	"id":     "a.id",
	"nombre": "a.nombre",
}

type ApplicationRepositoryInterface interface {
	CrudRepositoryInterface[entities.Application]
	FindByRole(ctx context.Context, roleID uint64) ([]entities.Application, error)
	LinkRole(ctx context.Context, tx pgx.Tx, roleID, applicationID uint64) (*entities.RoleApplication, error)
	UnlinkRole(ctx context.Context, tx pgx.Tx, roleID, applicationID uint64) error
	RoleLinked(ctx context.Context, roleID, applicationID uint64) (bool, error)
}

type ApplicationRepository struct {
	crudRepository[entities.Application]
}

func NewApplicationRepository(storage *pgxpool.Pool, logger *zap.Logger) ApplicationRepositoryInterface {
	return &ApplicationRepository{newCrud(storage, logger, tableSpec[entities.Application]{
		name:    applicationTable,
		alias:   "a",
		columns: []string{"a.id", "a.nombre", "a.descripcion"},
		fields:  applicationMap,
		search:  []string{"a.nombre"},
		scan: func(row pgx.Row) (*entities.Application, error) {
			var a entities.Application
			if err := row.Scan(&a.ID, &a.Name, &a.Description); err != nil {
				return nil, scanErr("aplicación", err)
			}
			return &a, nil
		},
		values: func(e *entities.Application) map[string]interface{} {
			return map[string]interface{}{"nombre": e.Name, "descripcion": nullable(e.Description)}
		},
	})}
}

func (r *ApplicationRepository) FindByRole(ctx context.Context, roleID uint64) ([]entities.Application, error) {
	b := r.selectBuilder().
		Join(roleApplicationTable + " ar ON ar.aplicacion_id = a.id").
		Where(sq.Eq{"ar.rol_id": roleID}).
		OrderBy(r.spec.order)
	return r.query(ctx, r.storage, b)
}

func (r *ApplicationRepository) LinkRole(ctx context.Context, tx pgx.Tx, roleID, applicationID uint64) (*entities.RoleApplication, error) {
	query, args, err := psql.Insert(roleApplicationTable).
		Columns("rol_id", "aplicacion_id").
		Values(roleID, applicationID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}
	link := entities.RoleApplication{RoleID: roleID, ApplicationID: applicationID}
	if err := r.querier(tx).QueryRow(ctx, query, args...).Scan(&link.ID); err != nil {
		return nil, mapPgError(err)
	}
	return &link, nil
}

func (r *ApplicationRepository) UnlinkRole(ctx context.Context, tx pgx.Tx, roleID, applicationID uint64) error {
	query, args, err := psql.Delete(roleApplicationTable).
		Where(sq.Eq{"rol_id": roleID, "aplicacion_id": applicationID}).
		ToSql()
	if err != nil {
		return err
	}
	result, err := r.querier(tx).Exec(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) RoleLinked(ctx context.Context, roleID, applicationID uint64) (bool, error) {
	var ok bool
	err := r.storage.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM aplicacionrol WHERE rol_id = $1 AND aplicacion_id = $2)",
		roleID, applicationID,
	).Scan(&ok)
	return ok, mapPgError(err)
}
