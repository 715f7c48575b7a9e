package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"game-api/internal/infrastructure/bd"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/types"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// tableSpec describes how one entity is stored and read.
type tableSpec[T any] struct {
	name    string            // table name
	alias   string            // alias used in columns, joins and fields
	pk      string            // primary key column, unqualified
	columns []string          // selected columns, in scan order
	joins   []string          // LEFT JOIN clauses
	fields  map[string]string // json field -> column, for filter and sort
	search  []string          // columns matched by ?search=
	order   string            // default ORDER BY
	scan    func(row pgx.Row) (*T, error)
	values  func(e *T) map[string]interface{} // writable columns, without the key

	// clientKey marks tables whose key is supplied on insert (persona).
	clientKey bool
	key       func(e *T) uint64
}

// CrudRepositoryInterface is the storage contract shared by every entity.
type CrudRepositoryInterface[T any] interface {
	List(ctx context.Context, filter types.Filter) ([]T, uint64, error)
	FindByID(ctx context.Context, id uint64) (*T, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Create(ctx context.Context, tx pgx.Tx, e T) (uint64, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, e T) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

// crudRepository is the shared read/write base embedded by every entity repository.
type crudRepository[T any] struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
	spec    tableSpec[T]
}

func newCrud[T any](storage *pgxpool.Pool, logger *zap.Logger, spec tableSpec[T]) crudRepository[T] {
	if spec.pk == "" {
		spec.pk = "id"
	}
	if spec.order == "" {
		spec.order = spec.alias + "." + spec.pk + " ASC"
	}
	return crudRepository[T]{storage: storage, logger: logger, spec: spec}
}

func (r *crudRepository[T]) List(ctx context.Context, filter types.Filter) ([]T, uint64, error) {
	return r.list(ctx, filter)
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	return r.findByID(ctx, r.storage, id)
}

func (r *crudRepository[T]) Exists(ctx context.Context, id uint64) (bool, error) {
	return r.exists(ctx, r.storage, id)
}

func (r *crudRepository[T]) Create(ctx context.Context, tx pgx.Tx, e T) (uint64, error) {
	values := r.spec.values(&e)
	if r.spec.clientKey {
		values[r.spec.pk] = r.spec.key(&e)
	}
	return r.insert(ctx, r.querier(tx), values)
}

func (r *crudRepository[T]) Update(ctx context.Context, tx pgx.Tx, id uint64, e T) error {
	return r.update(ctx, r.querier(tx), id, r.spec.values(&e))
}

func (r *crudRepository[T]) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return r.delete(ctx, r.querier(tx), id)
}

func (r *crudRepository[T]) querier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func (r *crudRepository[T]) from() string {
	return r.spec.name + " AS " + r.spec.alias
}

func (r *crudRepository[T]) pkColumn() string {
	return r.spec.alias + "." + r.spec.pk
}

func (r *crudRepository[T]) selectBuilder() sq.SelectBuilder {
	b := psql.Select(r.spec.columns...).From(r.from())
	for _, j := range r.spec.joins {
		b = b.LeftJoin(j)
	}
	return b
}

func (r *crudRepository[T]) applySearch(b sq.SelectBuilder, search string) sq.SelectBuilder {
	if search == "" || len(r.spec.search) == 0 {
		return b
	}
	pat := "%" + search + "%"
	or := sq.Or{}
	for _, col := range r.spec.search {
		or = append(or, sq.ILike{col: pat})
	}
	return b.Where(or)
}

// list runs the COUNT and the paginated SELECT for filter plus any extra conditions.
func (r *crudRepository[T]) list(ctx context.Context, filter types.Filter, extra ...sq.Sqlizer) ([]T, uint64, error) {
	countBuilder := psql.Select("COUNT(*)").From(r.from())
	for _, j := range r.spec.joins {
		countBuilder = countBuilder.LeftJoin(j)
	}
	countBuilder = r.applySearch(countBuilder, filter.Search)
	for _, w := range extra {
		countBuilder = countBuilder.Where(w)
	}

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, r.spec.fields)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err)
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	baseBuilder := r.applySearch(r.selectBuilder(), filter.Search)
	for _, w := range extra {
		baseBuilder = baseBuilder.Where(w)
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, r.spec.fields)
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy(r.spec.order)
	}

	items, err := r.query(ctx, r.storage, baseBuilder)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// findAll returns every row matching where, without pagination.
func (r *crudRepository[T]) findAll(ctx context.Context, where sq.Sqlizer) ([]T, error) {
	b := r.selectBuilder().OrderBy(r.spec.order)
	if where != nil {
		b = b.Where(where)
	}
	return r.query(ctx, r.storage, b)
}

func (r *crudRepository[T]) query(ctx context.Context, q Querier, b sq.SelectBuilder) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := r.spec.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, mapPgError(rows.Err())
}

func (r *crudRepository[T]) findOne(ctx context.Context, q Querier, where sq.Sqlizer) (*T, error) {
	query, args, err := r.selectBuilder().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return r.spec.scan(q.QueryRow(ctx, query, args...))
}

func (r *crudRepository[T]) findByID(ctx context.Context, q Querier, id uint64) (*T, error) {
	return r.findOne(ctx, q, sq.Eq{r.pkColumn(): id})
}

func (r *crudRepository[T]) exists(ctx context.Context, q Querier, id uint64) (bool, error) {
	var ok bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", r.spec.name, r.spec.pk)
	if err := q.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, mapPgError(err)
	}
	return ok, nil
}

// insert writes values and returns the generated (or supplied) primary key.
func (r *crudRepository[T]) insert(ctx context.Context, q Querier, values map[string]interface{}) (uint64, error) {
	query, args, err := psql.Insert(r.spec.name).SetMap(values).Suffix("RETURNING " + r.spec.pk).ToSql()
	if err != nil {
		return 0, err
	}
	var id uint64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		r.logger.Debug("insert failed", zap.String("table", r.spec.name), zap.Error(err))
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *crudRepository[T]) update(ctx context.Context, q Querier, id uint64, values map[string]interface{}) error {
	query, args, err := psql.Update(r.spec.name).SetMap(values).Where(sq.Eq{r.spec.pk: id}).ToSql()
	if err != nil {
		return err
	}
	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Debug("update failed", zap.String("table", r.spec.name), zap.Uint64("id", id), zap.Error(err))
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *crudRepository[T]) delete(ctx context.Context, q Querier, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.spec.name, r.spec.pk)
	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanErr maps pgx.ErrNoRows to ErrNotFound and wraps other scan errors.
func scanErr(entity string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("error al leer %s: %w", entity, mapPgError(err))
}

// mapPgError turns integrity violations into client errors: unique -> 409, other -> 400.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	ctx := map[string]interface{}{"code": pgErr.Code, "constraint": pgErr.ConstraintName, "table": pgErr.TableName}
	switch {
	case pgErr.Code == "23505":
		return apperrors.NewHttpError(http.StatusConflict, apperrors.ErrConflict.Error(),
			fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.Message), ctx)
	case strings.HasPrefix(pgErr.Code, "23"), strings.HasPrefix(pgErr.Code, "22"):
		msg := "Error de integridad en los datos"
		if pgErr.Detail != "" {
			msg += ": " + pgErr.Detail
		}
		return apperrors.NewHttpError(http.StatusBadRequest, msg,
			fmt.Errorf("%w: %s", apperrors.ErrBadRequest, pgErr.Message), ctx)
	}
	return err
}

func nullable[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
