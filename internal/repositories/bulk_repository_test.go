package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

func TestBulkRepository_InsertRows(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	_, err := pool.Exec(ctx, `TRUNCATE TABLE actividad, persona, cargo RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	logger := zap.NewNop()
	bulk := NewBulkRepository(logger)
	positions := NewPositionRepository(pool, logger)
	txManager := NewTxManager(pool)

	cargos := BulkTable{
		Name:    positionTable,
		Key:     "id",
		Columns: map[string]bool{"id": true, "descripcion": false},
		Serial:  true,
	}

	var inserted, skipped int
	err = txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		inserted, skipped, err = bulk.InsertRows(ctx, tx, cargos, []map[string]interface{}{
			{"id": int64(1), "descripcion": "Técnico"},
			{"id": int64(2), "descripcion": "Supervisor"},
			{"id": int64(5), "descripcion": "Ingeniero"},
		})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.Equal(t, 0, skipped)

	t.Run("later creates continue after the loaded ids", func(t *testing.T) {
		id, err := positions.Create(ctx, nil, entities.Position{Description: "Auxiliar"})
		require.NoError(t, err)
		assert.Equal(t, uint64(6), id)
	})

	t.Run("existing keys are skipped", func(t *testing.T) {
		err := txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
			var err error
			inserted, skipped, err = bulk.InsertRows(ctx, tx, cargos, []map[string]interface{}{
				{"id": int64(1), "descripcion": "Repetido"},
				{"descripcion": "Sin id"},
			})
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted)
		assert.Equal(t, 1, skipped)

		first, err := positions.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Técnico", first.Description)
	})
}
