package repositories

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-api/internal/entities"
	"game-api/pkg/database/postgresql"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/types"
	"game-api/pkg/utils"
)

var testPool *pgxpool.Pool

// TestMain connects to TEST_DATABASE_URL and applies the migrations; without it the
// storage tests are skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		ctx := context.Background()
		pool, err := postgresql.NewPool(ctx, dsn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "no se pudo conectar a la base de pruebas: %v\n", err)
			os.Exit(1)
		}
		if err := postgresql.Migrate(ctx, pool, "up"); err != nil {
			fmt.Fprintf(os.Stderr, "no se pudo aplicar el esquema: %v\n", err)
			os.Exit(1)
		}
		testPool = pool
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	os.Exit(code)
}

func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL no definida")
	}
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE equipo, subsistema, sistema, planta, contratousuario, contrato, cliente RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "no se pudieron limpiar las tablas")
	return testPool
}

func TestPlantRepository_Crud(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	logger := zap.NewNop()
	contracts := NewContractRepository(pool, logger)
	plants := NewPlantRepository(pool, logger)

	contractID, err := contracts.Create(ctx, nil, entities.Contract{Name: "Acueducto"})
	require.NoError(t, err)

	northID, err := plants.Create(ctx, nil, entities.Plant{Name: "Norte", Municipality: "Cali", ContractID: contractID})
	require.NoError(t, err)
	_, err = plants.Create(ctx, nil, entities.Plant{Name: "Sur", Municipality: "Buga", Description: utils.ToPtr("secundaria"), ContractID: contractID})
	require.NoError(t, err)

	north, err := plants.FindByID(ctx, northID)
	require.NoError(t, err)
	assert.Equal(t, "Norte", north.Name)
	assert.Nil(t, north.Description)

	t.Run("list with search and filter", func(t *testing.T) {
		f := types.NewFilter()
		f.Search = "bug"
		items, total, err := plants.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Sur", items[0].Name)

		f = types.NewFilter().With("contrato_id", fmt.Sprint(contractID))
		_, total, err = plants.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
	})

	t.Run("update", func(t *testing.T) {
		north.Location = utils.ToPtr("3.45,-76.53")
		require.NoError(t, plants.Update(ctx, nil, northID, *north))
		got, err := plants.FindByID(ctx, northID)
		require.NoError(t, err)
		assert.Equal(t, "3.45,-76.53", *got.Location)
	})

	t.Run("foreign key violation is a bad request", func(t *testing.T) {
		_, err := plants.Create(ctx, nil, entities.Plant{Name: "X", Municipality: "Y", ContractID: 9999})
		var httpErr *apperrors.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, plants.Delete(ctx, nil, northID))
		_, err := plants.FindByID(ctx, northID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.ErrorIs(t, plants.Delete(ctx, nil, northID), apperrors.ErrNotFound)

		byContract, err := plants.FindByContract(ctx, contractID)
		require.NoError(t, err)
		assert.Len(t, byContract, 1)
	})
}
