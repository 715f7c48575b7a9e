package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const userTable = "usuario"

var userMap = map[string]string{
	"id":       "u.id",
	"username": "u.username",
	"email":    "u.email",
	"rol_id":   "u.rol_id",
}

type UserRepositoryInterface interface {
	CrudRepositoryInterface[entities.User]
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByRole(ctx context.Context, roleID uint64) ([]entities.User, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]entities.User, error)
	SetRole(ctx context.Context, tx pgx.Tx, userID, roleID uint64) error
}

type UserRepository struct {
	crudRepository[entities.User]
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{newCrud(storage, logger, tableSpec[entities.User]{
		name:    userTable,
		alias:   "u",
		columns: []string{"u.id", "u.username", "u.password", "u.email", "u.rol_id"},
		fields:  userMap,
		search:  []string{"u.username", "u.email"},
		scan: func(row pgx.Row) (*entities.User, error) {
			var u entities.User
			if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.RoleID); err != nil {
				return nil, scanErr("usuario", err)
			}
			return &u, nil
		},
		values: func(e *entities.User) map[string]interface{} {
			return map[string]interface{}{
				"username": e.Username,
				"password": e.Password,
				"email":    nullable(e.Email),
				"rol_id":   e.RoleID,
			}
		},
	})}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, r.storage, sq.Eq{"u.username": username})
}

func (r *UserRepository) FindByRole(ctx context.Context, roleID uint64) ([]entities.User, error) {
	return r.findAll(ctx, sq.Eq{"u.rol_id": roleID})
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uint64) ([]entities.User, error) {
	if len(ids) == 0 {
		return []entities.User{}, nil
	}
	return r.findAll(ctx, sq.Eq{"u.id": ids})
}

func (r *UserRepository) SetRole(ctx context.Context, tx pgx.Tx, userID, roleID uint64) error {
	return r.update(ctx, r.querier(tx), userID, map[string]interface{}{"rol_id": roleID})
}
