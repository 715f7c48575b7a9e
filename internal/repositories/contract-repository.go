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
	contractTable     = "contrato"
	contractUserTable = "contratousuario"
)

var contractMap = map[string]string{
	"id":         "k.id",
	"nombre":     "k.nombre",
	"cliente_id": "k.cliente_id",
}

type ContractRepositoryInterface interface {
	CrudRepositoryInterface[entities.Contract]
	FindByClients(ctx context.Context, clientIDs []uint64) ([]entities.Contract, error)
	FindByUser(ctx context.Context, userID uint64) ([]entities.Contract, error)
	SetClient(ctx context.Context, tx pgx.Tx, contractID uint64, clientID *uint64) error

	LinkUser(ctx context.Context, tx pgx.Tx, userID, contractID uint64) error
	UnlinkUser(ctx context.Context, tx pgx.Tx, userID, contractID uint64) error
	UserLinked(ctx context.Context, userID, contractID uint64) (bool, error)
	FindUserIDs(ctx context.Context, contractID uint64) ([]uint64, error)
}

type ContractRepository struct {
	crudRepository[entities.Contract]
}

func NewContractRepository(storage *pgxpool.Pool, logger *zap.Logger) ContractRepositoryInterface {
	return &ContractRepository{newCrud(storage, logger, tableSpec[entities.Contract]{
		name:    contractTable,
		alias:   "k",
		columns: []string{"k.id", "k.nombre", "k.descripcion", "k.cliente_id"},
		fields:  contractMap,
		search:  []string{"k.nombre"},
		scan: func(row pgx.Row) (*entities.Contract, error) {
			var k entities.Contract
			if err := row.Scan(&k.ID, &k.Name, &k.Description, &k.ClientID); err != nil {
				return nil, scanErr("contrato", err)
			}
			return &k, nil
		},
		values: func(e *entities.Contract) map[string]interface{} {
			return map[string]interface{}{
				"nombre":      e.Name,
				"descripcion": nullable(e.Description),
				"cliente_id":  nullable(e.ClientID),
			}
		},
	})}
}

func (r *ContractRepository) FindByClients(ctx context.Context, clientIDs []uint64) ([]entities.Contract, error) {
	if len(clientIDs) == 0 {
		return []entities.Contract{}, nil
	}
	return r.findAll(ctx, sq.Eq{"k.cliente_id": clientIDs})
}

func (r *ContractRepository) FindByUser(ctx context.Context, userID uint64) ([]entities.Contract, error) {
	b := r.selectBuilder().
		Join(contractUserTable + " cu ON cu.contrato_id = k.id").
		Where(sq.Eq{"cu.usuario_id": userID}).
		OrderBy(r.spec.order)
	return r.query(ctx, r.storage, b)
}

// SetClient links the contract to clientID, or unlinks it when clientID is nil.
func (r *ContractRepository) SetClient(ctx context.Context, tx pgx.Tx, contractID uint64, clientID *uint64) error {
	return r.update(ctx, r.querier(tx), contractID, map[string]interface{}{"cliente_id": nullable(clientID)})
}

func (r *ContractRepository) LinkUser(ctx context.Context, tx pgx.Tx, userID, contractID uint64) error {
	query, args, err := psql.Insert(contractUserTable).
		Columns("usuario_id", "contrato_id").
		Values(userID, contractID).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.querier(tx).Exec(ctx, query, args...); err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *ContractRepository) UnlinkUser(ctx context.Context, tx pgx.Tx, userID, contractID uint64) error {
	query, args, err := psql.Delete(contractUserTable).
		Where(sq.Eq{"usuario_id": userID, "contrato_id": contractID}).
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

func (r *ContractRepository) UserLinked(ctx context.Context, userID, contractID uint64) (bool, error) {
	var ok bool
	err := r.storage.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM contratousuario WHERE usuario_id = $1 AND contrato_id = $2)",
		userID, contractID,
	).Scan(&ok)
	return ok, mapPgError(err)
}

func (r *ContractRepository) FindUserIDs(ctx context.Context, contractID uint64) ([]uint64, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT usuario_id FROM contratousuario WHERE contrato_id = $1 ORDER BY usuario_id", contractID)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
