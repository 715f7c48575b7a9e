package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"game-api/internal/entities"
	"game-api/internal/repositories"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/types"
)

// memRepo is an in-memory CrudRepositoryInterface keyed by the entity ID.
type memRepo[T any] struct {
	mu     sync.Mutex
	items  map[uint64]T
	order  []uint64
	nextID uint64
	getID  func(*T) uint64
	setID  func(*T, uint64)
}

func newMemRepo[T any](getID func(*T) uint64, setID func(*T, uint64), seed ...T) *memRepo[T] {
	r := &memRepo[T]{items: map[uint64]T{}, getID: getID, setID: setID}
	for _, e := range seed {
		id := getID(&e)
		r.items[id] = e
		r.order = append(r.order, id)
		if id > r.nextID {
			r.nextID = id
		}
	}
	return r
}

func (r *memRepo[T]) all() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		if e, ok := r.items[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (r *memRepo[T]) List(_ context.Context, _ types.Filter) ([]T, uint64, error) {
	items := r.all()
	return items, uint64(len(items)), nil
}

func (r *memRepo[T]) FindByID(_ context.Context, id uint64) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *memRepo[T]) Exists(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *memRepo[T]) Create(_ context.Context, _ pgx.Tx, e T) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.setID(&e, r.nextID)
	r.items[r.nextID] = e
	r.order = append(r.order, r.nextID)
	return r.nextID, nil
}

func (r *memRepo[T]) Update(_ context.Context, _ pgx.Tx, id uint64, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	r.setID(&e, id)
	r.items[id] = e
	return nil
}

func (r *memRepo[T]) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func filterBy[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, e := range items {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

func inIDs(ids []uint64, id uint64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakePlantRepo struct {
	*memRepo[entities.Plant]
	findAllCalls int
}

func newFakePlantRepo(seed ...entities.Plant) *fakePlantRepo {
	return &fakePlantRepo{memRepo: newMemRepo(
		func(e *entities.Plant) uint64 { return e.ID },
		func(e *entities.Plant, id uint64) { e.ID = id }, seed...)}
}

func (r *fakePlantRepo) FindAll(context.Context) ([]entities.Plant, error) {
	r.findAllCalls++
	return r.all(), nil
}

func (r *fakePlantRepo) FindByContract(_ context.Context, contractID uint64) ([]entities.Plant, error) {
	return filterBy(r.all(), func(e entities.Plant) bool { return e.ContractID == contractID }), nil
}

type fakeSystemRepo struct{ *memRepo[entities.System] }

func newFakeSystemRepo(seed ...entities.System) *fakeSystemRepo {
	return &fakeSystemRepo{newMemRepo(
		func(e *entities.System) uint64 { return e.ID },
		func(e *entities.System, id uint64) { e.ID = id }, seed...)}
}

func (r *fakeSystemRepo) FindAll(context.Context) ([]entities.System, error) { return r.all(), nil }

func (r *fakeSystemRepo) FindByPlants(_ context.Context, plantIDs []uint64) ([]entities.System, error) {
	return filterBy(r.all(), func(e entities.System) bool { return inIDs(plantIDs, e.PlantID) }), nil
}

type fakeSubsystemRepo struct{ *memRepo[entities.Subsystem] }

func newFakeSubsystemRepo(seed ...entities.Subsystem) *fakeSubsystemRepo {
	return &fakeSubsystemRepo{newMemRepo(
		func(e *entities.Subsystem) uint64 { return e.ID },
		func(e *entities.Subsystem, id uint64) { e.ID = id }, seed...)}
}

func (r *fakeSubsystemRepo) FindAll(context.Context) ([]entities.Subsystem, error) {
	return r.all(), nil
}

func (r *fakeSubsystemRepo) FindBySystems(_ context.Context, systemIDs []uint64) ([]entities.Subsystem, error) {
	return filterBy(r.all(), func(e entities.Subsystem) bool { return inIDs(systemIDs, e.SystemID) }), nil
}

type fakeEquipmentRepo struct{ *memRepo[entities.Equipment] }

func newFakeEquipmentRepo(seed ...entities.Equipment) *fakeEquipmentRepo {
	return &fakeEquipmentRepo{newMemRepo(
		func(e *entities.Equipment) uint64 { return e.ID },
		func(e *entities.Equipment, id uint64) { e.ID = id }, seed...)}
}

func (r *fakeEquipmentRepo) FindAll(context.Context) ([]entities.Equipment, error) {
	return r.all(), nil
}

func (r *fakeEquipmentRepo) FindBySubsystems(_ context.Context, subsystemIDs []uint64) ([]entities.Equipment, error) {
	return filterBy(r.all(), func(e entities.Equipment) bool { return inIDs(subsystemIDs, e.SubsystemID) }), nil
}

// fakeContractRepo only answers Exists; other methods panic through the nil interface.
type fakeContractRepo struct {
	repositories.ContractRepositoryInterface
	ids map[uint64]bool
}

func (r *fakeContractRepo) Exists(_ context.Context, id uint64) (bool, error) {
	return r.ids[id], nil
}

type fakeHierarchyCache struct{ invalidations int }

func (c *fakeHierarchyCache) Invalidate(context.Context) { c.invalidations++ }

type memCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemCache() *memCache { return &memCache{data: map[string]string{}} }

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memCache) DelByPrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}
