package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BulkTable describes a table that accepts spreadsheet uploads.
type BulkTable struct {
	Name    string
	Key     string
	Columns map[string]bool // column -> integer typed
	// Serial marks a BIGSERIAL key whose sequence must follow explicitly inserted ids.
	Serial bool
}

type BulkRepositoryInterface interface {
	// InsertRows inserts rows skipping those whose key already exists.
	InsertRows(ctx context.Context, tx pgx.Tx, table BulkTable, rows []map[string]interface{}) (inserted int, skipped int, err error)
}

type BulkRepository struct {
	logger *zap.Logger
}

func NewBulkRepository(logger *zap.Logger) BulkRepositoryInterface {
	return &BulkRepository{logger: logger}
}

func (r *BulkRepository) InsertRows(ctx context.Context, tx pgx.Tx, table BulkTable, rows []map[string]interface{}) (int, int, error) {
	inserted, skipped := 0, 0
	for i, row := range rows {
		if key, ok := row[table.Key]; ok {
			var exists bool
			query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", table.Name, table.Key)
			if err := tx.QueryRow(ctx, query, key).Scan(&exists); err != nil {
				return inserted, skipped, mapPgError(err)
			}
			if exists {
				skipped++
				continue
			}
		}

		query, args, err := psql.Insert(table.Name).SetMap(row).ToSql()
		if err != nil {
			return inserted, skipped, err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			r.logger.Warn("fila rechazada en cargue masivo", zap.String("tabla", table.Name), zap.Int("fila", i+2), zap.Error(err))
			return inserted, skipped, fmt.Errorf("fila %d: %w", i+2, mapPgError(err))
		}
		inserted++
	}

	if table.Serial && inserted > 0 {
		if err := syncSequence(ctx, tx, table); err != nil {
			return inserted, skipped, err
		}
	}
	return inserted, skipped, nil
}

// syncSequence moves the key sequence past the highest stored id.
func syncSequence(ctx context.Context, tx pgx.Tx, table BulkTable) error {
	query := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%[1]s', '%[2]s'), COALESCE(MAX(%[2]s), 1), MAX(%[2]s) IS NOT NULL) FROM %[1]s",
		table.Name, table.Key)
	if _, err := tx.Exec(ctx, query); err != nil {
		return fmt.Errorf("no se pudo ajustar la secuencia de %s: %w", table.Name, mapPgError(err))
	}
	return nil
}
