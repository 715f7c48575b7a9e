package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/entities"
)

type ResumeRepositoryInterface interface {
	// ReplaceCollection drops every fragment of collection and stores fragments in its place.
	ReplaceCollection(ctx context.Context, tx pgx.Tx, collection string, fragments []entities.ResumeFragment) error
	FindByCollection(ctx context.Context, collection string) ([]entities.ResumeFragment, error)
}

type ResumeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewResumeRepository(storage *pgxpool.Pool, logger *zap.Logger) ResumeRepositoryInterface {
	return &ResumeRepository{storage: storage, logger: logger}
}

func (r *ResumeRepository) ReplaceCollection(ctx context.Context, tx pgx.Tx, collection string, fragments []entities.ResumeFragment) error {
	if _, err := tx.Exec(ctx, "DELETE FROM cv_fragmento WHERE coleccion = $1", collection); err != nil {
		return fmt.Errorf("error al limpiar la colección %s: %w", collection, err)
	}
	if len(fragments) == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(fragments))
	for _, f := range fragments {
		rows = append(rows, []interface{}{collection, f.File, f.Ordinal, f.Content, f.Embedding})
	}
	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"cv_fragmento"},
		[]string{"coleccion", "archivo", "ordinal", "contenido", "embedding"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("error al guardar los fragmentos: %w", err)
	}
	r.logger.Debug("fragmentos guardados", zap.String("coleccion", collection), zap.Int64("total", n))
	return nil
}

func (r *ResumeRepository) FindByCollection(ctx context.Context, collection string) ([]entities.ResumeFragment, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, coleccion, archivo, ordinal, contenido, embedding, created_at
		 FROM cv_fragmento WHERE coleccion = $1 ORDER BY archivo, ordinal`, collection)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	fragments := make([]entities.ResumeFragment, 0)
	for rows.Next() {
		var f entities.ResumeFragment
		if err := rows.Scan(&f.ID, &f.Collection, &f.File, &f.Ordinal, &f.Content, &f.Embedding, &f.CreatedAt); err != nil {
			return nil, scanErr("fragmento", err)
		}
		fragments = append(fragments, f)
	}
	return fragments, rows.Err()
}
