package services

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"game-api/internal/repositories"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/types"
	"game-api/pkg/utils"
)

// CrudServiceInterface is the create/read/update/delete contract shared by every entity,
// parameterized over its create shape C, update shape U and read shape R.
type CrudServiceInterface[C any, U any, R any] interface {
	List(ctx context.Context, filter types.Filter) ([]R, uint64, error)
	Get(ctx context.Context, id uint64) (*R, error)
	Create(ctx context.Context, payload C) (*R, error)
	// Update applies only the fields present in rawBody.
	Update(ctx context.Context, id uint64, payload U, rawBody []byte) (*R, error)
	Delete(ctx context.Context, id uint64) error
}

type crudHooks[T any, C any, U any, R any] struct {
	notFound   string
	fromCreate func(ctx context.Context, payload C) (T, error)
	toRead     func(e T) R
	// patch defaults to utils.ApplyPatch
	patch func(e *T, payload U, rawBody []byte) error
	// validate runs before every write; current is nil on create.
	validate   func(ctx context.Context, current *T, next *T) error
	afterWrite func(ctx context.Context)
}

type crudService[T any, C any, U any, R any] struct {
	repo   repositories.CrudRepositoryInterface[T]
	logger *zap.Logger
	hooks  crudHooks[T, C, U, R]
}

func newCrudService[T any, C any, U any, R any](
	repo repositories.CrudRepositoryInterface[T],
	logger *zap.Logger,
	hooks crudHooks[T, C, U, R],
) crudService[T, C, U, R] {
	if hooks.patch == nil {
		hooks.patch = func(e *T, payload U, rawBody []byte) error {
			return utils.ApplyPatch(e, &payload, rawBody)
		}
	}
	return crudService[T, C, U, R]{repo: repo, logger: logger, hooks: hooks}
}

func (s *crudService[T, C, U, R]) List(ctx context.Context, filter types.Filter) ([]R, uint64, error) {
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al listar", zap.String("entidad", s.hooks.notFound), zap.Error(err))
		return nil, 0, err
	}
	return mapSlice(items, s.hooks.toRead), total, nil
}

func (s *crudService[T, C, U, R]) Get(ctx context.Context, id uint64) (*R, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	r := s.hooks.toRead(*e)
	return &r, nil
}

func (s *crudService[T, C, U, R]) find(ctx context.Context, id uint64) (*T, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, s.hooks.notFound)
	}
	return e, nil
}

func (s *crudService[T, C, U, R]) Create(ctx context.Context, payload C) (*R, error) {
	e, err := s.hooks.fromCreate(ctx, payload)
	if err != nil {
		return nil, err
	}
	if s.hooks.validate != nil {
		if err := s.hooks.validate(ctx, nil, &e); err != nil {
			return nil, err
		}
	}

	id, err := s.repo.Create(ctx, nil, e)
	if err != nil {
		s.logger.Error("error al crear", zap.String("entidad", s.hooks.notFound), zap.Error(err))
		return nil, err
	}
	s.written(ctx)
	s.logger.Info("registro creado", zap.Uint64("id", id))
	return s.Get(ctx, id)
}

func (s *crudService[T, C, U, R]) Update(ctx context.Context, id uint64, payload U, rawBody []byte) (*R, error) {
	current, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if err := s.hooks.patch(&next, payload, rawBody); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Cuerpo de la solicitud no válido", err, nil)
	}
	if s.hooks.validate != nil {
		if err := s.hooks.validate(ctx, current, &next); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, nil, id, next); err != nil {
		s.logger.Error("error al actualizar", zap.Uint64("id", id), zap.Error(err))
		return nil, notFoundAs(err, s.hooks.notFound)
	}
	s.written(ctx)
	return s.Get(ctx, id)
}

func (s *crudService[T, C, U, R]) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return notFoundAs(err, s.hooks.notFound)
	}
	s.written(ctx)
	s.logger.Info("registro eliminado", zap.Uint64("id", id))
	return nil
}

func (s *crudService[T, C, U, R]) written(ctx context.Context) {
	if s.hooks.afterWrite != nil {
		s.hooks.afterWrite(ctx)
	}
}

// existsChecker is satisfied by every entity repository.
type existsChecker interface {
	Exists(ctx context.Context, id uint64) (bool, error)
}

// mustExist returns a 404 with msg when id is not stored in repo.
func mustExist(ctx context.Context, repo existsChecker, id uint64, msg string) error {
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewNotFoundError(msg)
	}
	return nil
}

func notFoundAs(err error, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		var httpErr *apperrors.HttpError
		if errors.As(err, &httpErr) {
			return err
		}
		return apperrors.NewNotFoundError(msg)
	}
	return err
}

func mapSlice[T any, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
