package services

import (
	"context"

	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/internal/repositories"
)

const (
	msgPlantNotFound     = "Planta no encontrada"
	msgSystemNotFound    = "Sistema no encontrado"
	msgSubsystemNotFound = "Subsistema no encontrado"
)

// Plants

type PlantServiceInterface interface {
	CrudServiceInterface[dto.CreatePlantDTO, dto.UpdatePlantDTO, dto.PlantDTO]
	ListSystems(ctx context.Context, plantID uint64) ([]dto.SystemDTO, error)
}

type PlantService struct {
	crudService[entities.Plant, dto.CreatePlantDTO, dto.UpdatePlantDTO, dto.PlantDTO]
	systemRepo repositories.SystemRepositoryInterface
}

func NewPlantService(
	repo repositories.PlantRepositoryInterface,
	contractRepo repositories.ContractRepositoryInterface,
	systemRepo repositories.SystemRepositoryInterface,
	hierarchy HierarchyCacheInterface,
	logger *zap.Logger,
) PlantServiceInterface {
	return &PlantService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Plant](repo), logger,
			crudHooks[entities.Plant, dto.CreatePlantDTO, dto.UpdatePlantDTO, dto.PlantDTO]{
				notFound: msgPlantNotFound,
				fromCreate: func(_ context.Context, p dto.CreatePlantDTO) (entities.Plant, error) {
					return entities.Plant{
						Name:         p.Name,
						Description:  p.Description,
						Municipality: p.Municipality,
						Location:     p.Location,
						ContractID:   p.ContractID,
					}, nil
				},
				toRead: plantToDTO,
				validate: func(ctx context.Context, current, next *entities.Plant) error {
					if current != nil && current.ContractID == next.ContractID {
						return nil
					}
					return mustExist(ctx, contractRepo, next.ContractID, msgContractNotFound)
				},
				afterWrite: hierarchy.Invalidate,
			}),
		systemRepo: systemRepo,
	}
}

func (s *PlantService) ListSystems(ctx context.Context, plantID uint64) ([]dto.SystemDTO, error) {
	if err := mustExist(ctx, s.repo, plantID, msgPlantNotFound); err != nil {
		return nil, err
	}
	systems, err := s.systemRepo.FindByPlants(ctx, []uint64{plantID})
	if err != nil {
		return nil, err
	}
	return mapSlice(systems, systemToDTO), nil
}

// Systems

type SystemServiceInterface interface {
	CrudServiceInterface[dto.CreateSystemDTO, dto.UpdateSystemDTO, dto.SystemDTO]
	ListSubsystems(ctx context.Context, systemID uint64) ([]dto.SubsystemDTO, error)
}

type SystemService struct {
	crudService[entities.System, dto.CreateSystemDTO, dto.UpdateSystemDTO, dto.SystemDTO]
	subsystemRepo repositories.SubsystemRepositoryInterface
}

func NewSystemService(
	repo repositories.SystemRepositoryInterface,
	plantRepo repositories.PlantRepositoryInterface,
	subsystemRepo repositories.SubsystemRepositoryInterface,
	hierarchy HierarchyCacheInterface,
	logger *zap.Logger,
) SystemServiceInterface {
	return &SystemService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.System](repo), logger,
			crudHooks[entities.System, dto.CreateSystemDTO, dto.UpdateSystemDTO, dto.SystemDTO]{
				notFound: msgSystemNotFound,
				fromCreate: func(_ context.Context, p dto.CreateSystemDTO) (entities.System, error) {
					return entities.System{Code: p.Code, Name: p.Name, Description: p.Description, PlantID: p.PlantID}, nil
				},
				toRead: systemToDTO,
				validate: func(ctx context.Context, current, next *entities.System) error {
					if current != nil && current.PlantID == next.PlantID {
						return nil
					}
					return mustExist(ctx, plantRepo, next.PlantID, msgPlantNotFound)
				},
				afterWrite: hierarchy.Invalidate,
			}),
		subsystemRepo: subsystemRepo,
	}
}

func (s *SystemService) ListSubsystems(ctx context.Context, systemID uint64) ([]dto.SubsystemDTO, error) {
	if err := mustExist(ctx, s.repo, systemID, msgSystemNotFound); err != nil {
		return nil, err
	}
	subsystems, err := s.subsystemRepo.FindBySystems(ctx, []uint64{systemID})
	if err != nil {
		return nil, err
	}
	return mapSlice(subsystems, subsystemToDTO), nil
}

// Subsystems

type SubsystemServiceInterface interface {
	CrudServiceInterface[dto.CreateSubsystemDTO, dto.UpdateSubsystemDTO, dto.SubsystemDTO]
	ListEquipment(ctx context.Context, subsystemID uint64) ([]dto.EquipmentDetailDTO, error)
}

type SubsystemService struct {
	crudService[entities.Subsystem, dto.CreateSubsystemDTO, dto.UpdateSubsystemDTO, dto.SubsystemDTO]
	equipmentRepo repositories.EquipmentRepositoryInterface
}

func NewSubsystemService(
	repo repositories.SubsystemRepositoryInterface,
	systemRepo repositories.SystemRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	hierarchy HierarchyCacheInterface,
	logger *zap.Logger,
) SubsystemServiceInterface {
	return &SubsystemService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Subsystem](repo), logger,
			crudHooks[entities.Subsystem, dto.CreateSubsystemDTO, dto.UpdateSubsystemDTO, dto.SubsystemDTO]{
				notFound: msgSubsystemNotFound,
				fromCreate: func(_ context.Context, p dto.CreateSubsystemDTO) (entities.Subsystem, error) {
					return entities.Subsystem{Code: p.Code, Name: p.Name, Description: p.Description, SystemID: p.SystemID}, nil
				},
				toRead: subsystemToDTO,
				validate: func(ctx context.Context, current, next *entities.Subsystem) error {
					if current != nil && current.SystemID == next.SystemID {
						return nil
					}
					return mustExist(ctx, systemRepo, next.SystemID, msgSystemNotFound)
				},
				afterWrite: hierarchy.Invalidate,
			}),
		equipmentRepo: equipmentRepo,
	}
}

func (s *SubsystemService) ListEquipment(ctx context.Context, subsystemID uint64) ([]dto.EquipmentDetailDTO, error) {
	if err := mustExist(ctx, s.repo, subsystemID, msgSubsystemNotFound); err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.FindBySubsystems(ctx, []uint64{subsystemID})
	if err != nil {
		return nil, err
	}
	return mapSlice(equipment, equipmentToDetailDTO), nil
}
