package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/internal/repositories"
)

const hierarchyCachePrefix = "jerarquia:"

// HierarchyCacheInterface drops cached hierarchy views after a write.
type HierarchyCacheInterface interface {
	Invalidate(ctx context.Context)
}

type HierarchyServiceInterface interface {
	HierarchyCacheInterface
	GetAll(ctx context.Context) ([]dto.PlantHierarchyDTO, error)
	GetPlant(ctx context.Context, plantID uint64) (*dto.PlantHierarchyDTO, error)
}

type HierarchyService struct {
	plantRepo     repositories.PlantRepositoryInterface
	systemRepo    repositories.SystemRepositoryInterface
	subsystemRepo repositories.SubsystemRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	cache         repositories.CacheRepositoryInterface
	ttl           time.Duration
	logger        *zap.Logger
}

// NewHierarchyService builds the hierarchy reader. cache may be nil, which disables caching.
func NewHierarchyService(
	plantRepo repositories.PlantRepositoryInterface,
	systemRepo repositories.SystemRepositoryInterface,
	subsystemRepo repositories.SubsystemRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) HierarchyServiceInterface {
	return &HierarchyService{
		plantRepo:     plantRepo,
		systemRepo:    systemRepo,
		subsystemRepo: subsystemRepo,
		equipmentRepo: equipmentRepo,
		cache:         cache,
		ttl:           ttl,
		logger:        logger,
	}
}

func (s *HierarchyService) GetAll(ctx context.Context) ([]dto.PlantHierarchyDTO, error) {
	key := hierarchyCachePrefix + "all"
	var cached []dto.PlantHierarchyDTO
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	var (
		plants     []entities.Plant
		systems    []entities.System
		subsystems []entities.Subsystem
		equipment  []entities.Equipment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { plants, err = s.plantRepo.FindAll(gctx); return })
	g.Go(func() (err error) { systems, err = s.systemRepo.FindAll(gctx); return })
	g.Go(func() (err error) { subsystems, err = s.subsystemRepo.FindAll(gctx); return })
	g.Go(func() (err error) { equipment, err = s.equipmentRepo.FindAll(gctx); return })
	if err := g.Wait(); err != nil {
		s.logger.Error("error al cargar la jerarquía", zap.Error(err))
		return nil, err
	}

	out := assembleHierarchy(plants, systems, subsystems, equipment)
	s.cacheSet(ctx, key, out)
	return out, nil
}

func (s *HierarchyService) GetPlant(ctx context.Context, plantID uint64) (*dto.PlantHierarchyDTO, error) {
	key := fmt.Sprintf("%splanta:%d", hierarchyCachePrefix, plantID)
	var cached dto.PlantHierarchyDTO
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	var (
		plant   *entities.Plant
		systems []entities.System
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { plant, err = s.plantRepo.FindByID(gctx, plantID); return })
	g.Go(func() (err error) { systems, err = s.systemRepo.FindByPlants(gctx, []uint64{plantID}); return })
	if err := g.Wait(); err != nil {
		return nil, notFoundAs(err, msgPlantNotFound)
	}

	subsystems, err := s.subsystemRepo.FindBySystems(ctx, ids(systems, func(e entities.System) uint64 { return e.ID }))
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.FindBySubsystems(ctx, ids(subsystems, func(e entities.Subsystem) uint64 { return e.ID }))
	if err != nil {
		return nil, err
	}

	out := assembleHierarchy([]entities.Plant{*plant}, systems, subsystems, equipment)[0]
	s.cacheSet(ctx, key, out)
	return &out, nil
}

func (s *HierarchyService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DelByPrefix(ctx, hierarchyCachePrefix); err != nil {
		s.logger.Warn("no se pudo invalidar la caché de jerarquía", zap.Error(err))
	}
}

func (s *HierarchyService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repositories.ErrCacheMiss) {
			s.logger.Warn("error al leer la caché", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false
	}
	s.logger.Debug("jerarquía obtenida de la caché", zap.String("key", key))
	return true
}

func (s *HierarchyService) cacheSet(ctx context.Context, key string, data interface{}) {
	if s.cache == nil {
		return
	}
	serialized, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, serialized, s.ttl); err != nil {
		s.logger.Warn("error al guardar en caché", zap.String("key", key), zap.Error(err))
	}
}

// assembleHierarchy nests the flat lists, keeping the order of each input.
func assembleHierarchy(
	plants []entities.Plant,
	systems []entities.System,
	subsystems []entities.Subsystem,
	equipment []entities.Equipment,
) []dto.PlantHierarchyDTO {
	equipmentBySubsystem := make(map[uint64][]dto.EquipmentShortDTO)
	for _, e := range equipment {
		equipmentBySubsystem[e.SubsystemID] = append(equipmentBySubsystem[e.SubsystemID], dto.EquipmentShortDTO{ID: e.ID, Name: e.Name})
	}

	subsystemsBySystem := make(map[uint64][]dto.SubsystemHierarchyDTO)
	for _, ss := range subsystems {
		node := subsystemToHierarchy(ss)
		if eq, ok := equipmentBySubsystem[ss.ID]; ok {
			node.Equipment = eq
		}
		subsystemsBySystem[ss.SystemID] = append(subsystemsBySystem[ss.SystemID], node)
	}

	systemsByPlant := make(map[uint64][]dto.SystemHierarchyDTO)
	for _, sys := range systems {
		node := systemToHierarchy(sys)
		if subs, ok := subsystemsBySystem[sys.ID]; ok {
			node.Subsystems = subs
		}
		systemsByPlant[sys.PlantID] = append(systemsByPlant[sys.PlantID], node)
	}

	out := make([]dto.PlantHierarchyDTO, 0, len(plants))
	for _, p := range plants {
		node := dto.PlantHierarchyDTO{
			ID:           p.ID,
			Name:         p.Name,
			Municipality: p.Municipality,
			Location:     p.Location,
			Systems:      systemsByPlant[p.ID],
		}
		if node.Systems == nil {
			node.Systems = []dto.SystemHierarchyDTO{}
		}
		out = append(out, node)
	}
	return out
}

func ids[T any](items []T, id func(T) uint64) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}
