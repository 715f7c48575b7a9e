package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

const clientTable = "cliente"

var clientMap = map[string]string{
	"id":     "c.id",
	"nombre": "c.nombre",
}

type ClientRepositoryInterface interface {
	CrudRepositoryInterface[entities.Client]
	FindAll(ctx context.Context) ([]entities.Client, error)
}

type ClientRepository struct {
	crudRepository[entities.Client]
}

func NewClientRepository(storage *pgxpool.Pool, logger *zap.Logger) ClientRepositoryInterface {
	return &ClientRepository{newCrud(storage, logger, tableSpec[entities.Client]{
		name:    clientTable,
		alias:   "c",
		columns: []string{"c.id", "c.nombre", "c.descripcion"},
		fields:  clientMap,
		search:  []string{"c.nombre"},
		scan: func(row pgx.Row) (*entities.Client, error) {
			var c entities.Client
			if err := row.Scan(&c.ID, &c.Name, &c.Description); err != nil {
				return nil, scanErr("cliente", err)
			}
			return &c, nil
		},
		values: func(e *entities.Client) map[string]interface{} {
			return map[string]interface{}{"nombre": e.Name, "descripcion": nullable(e.Description)}
		},
	})}
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]entities.Client, error) {
	return r.findAll(ctx, nil)
}
