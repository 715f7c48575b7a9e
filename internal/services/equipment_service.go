package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/internal/repositories"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/filestorage"
	"game-api/pkg/types"
)

const (
	msgEquipmentNotFound    = "Equipo no encontrado"
	msgAssetTypeNotFound    = "Tipo de activo no encontrado"
	msgManufacturerNotFound = "Fabricante no encontrado"
	msgModelNotFound        = "Modelo no encontrado"
	msgModelManufacturer    = "El modelo no pertenece al fabricante especificado"

	assetTypeImageDir = "tipos-activo"
)

// Asset types

type AssetTypeServiceInterface interface {
	CrudServiceInterface[dto.CreateAssetTypeDTO, dto.UpdateAssetTypeDTO, dto.AssetTypeDTO]
	// UploadImage stores the image, removes the previous one and returns the updated asset type.
	UploadImage(ctx context.Context, id uint64, file io.Reader, fileName string) (*dto.AssetTypeDTO, error)
}

type AssetTypeService struct {
	crudService[entities.AssetType, dto.CreateAssetTypeDTO, dto.UpdateAssetTypeDTO, dto.AssetTypeDTO]
	fileStorage filestorage.FileStorageInterface
}

func NewAssetTypeService(
	repo repositories.AssetTypeRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) AssetTypeServiceInterface {
	return &AssetTypeService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.AssetType](repo), logger,
			crudHooks[entities.AssetType, dto.CreateAssetTypeDTO, dto.UpdateAssetTypeDTO, dto.AssetTypeDTO]{
				notFound: msgAssetTypeNotFound,
				fromCreate: func(_ context.Context, p dto.CreateAssetTypeDTO) (entities.AssetType, error) {
					return entities.AssetType{Description: p.Description, Image: p.Image}, nil
				},
				toRead: assetTypeToDTO,
			}),
		fileStorage: fileStorage,
	}
}

func (s *AssetTypeService) UploadImage(ctx context.Context, id uint64, file io.Reader, fileName string) (*dto.AssetTypeDTO, error) {
	current, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	relPath, err := s.fileStorage.Save(file, strings.ToLower(filepath.Base(fileName)), assetTypeImageDir)
	if err != nil {
		return nil, apperrors.NewInternalError("No se pudo guardar la imagen", err)
	}

	previous := current.Image
	url := s.fileStorage.URL(relPath)
	current.Image = &url
	if err := s.repo.Update(ctx, nil, id, *current); err != nil {
		_ = s.fileStorage.Delete(relPath)
		return nil, notFoundAs(err, msgAssetTypeNotFound)
	}

	if previous != nil && s.ownsImage(*previous) {
		if err := s.fileStorage.Delete(*previous); err != nil {
			s.logger.Warn("no se pudo eliminar la imagen anterior", zap.String("imagen", *previous), zap.Error(err))
		}
	}
	return s.Get(ctx, id)
}

// ownsImage reports whether url points at an image uploaded through UploadImage.
// Free-form values written through create/update are never removed from disk.
func (s *AssetTypeService) ownsImage(url string) bool {
	prefix := s.fileStorage.URL(assetTypeImageDir) + "/"
	return strings.HasPrefix(url, prefix) && !strings.Contains(url, "..")
}

// Manufacturers

type ManufacturerServiceInterface interface {
	CrudServiceInterface[dto.CreateManufacturerDTO, dto.UpdateManufacturerDTO, dto.ManufacturerDTO]
	ListWithModels(ctx context.Context, filter types.Filter) ([]dto.ManufacturerWithModelsDTO, uint64, error)
	ListModels(ctx context.Context, manufacturerID uint64) ([]dto.ModelDTO, error)
}

type ManufacturerService struct {
	crudService[entities.Manufacturer, dto.CreateManufacturerDTO, dto.UpdateManufacturerDTO, dto.ManufacturerDTO]
	modelRepo repositories.ModelRepositoryInterface
}

func NewManufacturerService(
	repo repositories.ManufacturerRepositoryInterface,
	modelRepo repositories.ModelRepositoryInterface,
	logger *zap.Logger,
) ManufacturerServiceInterface {
	return &ManufacturerService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Manufacturer](repo), logger,
			crudHooks[entities.Manufacturer, dto.CreateManufacturerDTO, dto.UpdateManufacturerDTO, dto.ManufacturerDTO]{
				notFound: msgManufacturerNotFound,
				fromCreate: func(_ context.Context, p dto.CreateManufacturerDTO) (entities.Manufacturer, error) {
					return entities.Manufacturer{Name: p.Name}, nil
				},
				toRead: manufacturerToDTO,
			}),
		modelRepo: modelRepo,
	}
}

func (s *ManufacturerService) ListWithModels(ctx context.Context, filter types.Filter) ([]dto.ManufacturerWithModelsDTO, uint64, error) {
	manufacturers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint64, 0, len(manufacturers))
	for _, m := range manufacturers {
		ids = append(ids, m.ID)
	}
	models, err := s.modelRepo.FindByManufacturers(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	byManufacturer := make(map[uint64][]dto.ModelDTO)
	for _, m := range models {
		byManufacturer[m.ManufacturerID] = append(byManufacturer[m.ManufacturerID], modelToDTO(m))
	}

	out := make([]dto.ManufacturerWithModelsDTO, 0, len(manufacturers))
	for _, m := range manufacturers {
		item := dto.ManufacturerWithModelsDTO{ID: m.ID, Name: m.Name, Models: byManufacturer[m.ID]}
		if item.Models == nil {
			item.Models = []dto.ModelDTO{}
		}
		out = append(out, item)
	}
	return out, total, nil
}

func (s *ManufacturerService) ListModels(ctx context.Context, manufacturerID uint64) ([]dto.ModelDTO, error) {
	if err := mustExist(ctx, s.repo, manufacturerID, msgManufacturerNotFound); err != nil {
		return nil, err
	}
	models, err := s.modelRepo.FindByManufacturers(ctx, []uint64{manufacturerID})
	if err != nil {
		return nil, err
	}
	return mapSlice(models, modelToDTO), nil
}

// Models

type ModelServiceInterface interface {
	CrudServiceInterface[dto.CreateModelDTO, dto.UpdateModelDTO, dto.ModelDetailDTO]
}

type ModelService struct {
	crudService[entities.EquipmentModel, dto.CreateModelDTO, dto.UpdateModelDTO, dto.ModelDetailDTO]
}

func NewModelService(
	repo repositories.ModelRepositoryInterface,
	manufacturerRepo repositories.ManufacturerRepositoryInterface,
	logger *zap.Logger,
) ModelServiceInterface {
	return &ModelService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.EquipmentModel](repo), logger,
			crudHooks[entities.EquipmentModel, dto.CreateModelDTO, dto.UpdateModelDTO, dto.ModelDetailDTO]{
				notFound: msgModelNotFound,
				fromCreate: func(_ context.Context, p dto.CreateModelDTO) (entities.EquipmentModel, error) {
					return entities.EquipmentModel{Name: p.Name, ManufacturerID: p.ManufacturerID}, nil
				},
				toRead: modelToDetailDTO,
				validate: func(ctx context.Context, current, next *entities.EquipmentModel) error {
					if current != nil && current.ManufacturerID == next.ManufacturerID {
						return nil
					}
					return mustExist(ctx, manufacturerRepo, next.ManufacturerID, msgManufacturerNotFound)
				},
			}),
	}
}

// Equipment

type EquipmentServiceInterface interface {
	CrudServiceInterface[dto.CreateEquipmentDTO, dto.UpdateEquipmentDTO, dto.EquipmentDetailDTO]
	FilterEquipment(ctx context.Context, f dto.EquipmentFilterDTO) ([]dto.EquipmentDetailDTO, error)
}

type EquipmentService struct {
	crudService[entities.Equipment, dto.CreateEquipmentDTO, dto.UpdateEquipmentDTO, dto.EquipmentDetailDTO]
}

func NewEquipmentService(
	repo repositories.EquipmentRepositoryInterface,
	subsystemRepo repositories.SubsystemRepositoryInterface,
	assetTypeRepo repositories.AssetTypeRepositoryInterface,
	manufacturerRepo repositories.ManufacturerRepositoryInterface,
	modelRepo repositories.ModelRepositoryInterface,
	hierarchy HierarchyCacheInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	v := equipmentValidator{
		subsystems:    subsystemRepo,
		assetTypes:    assetTypeRepo,
		manufacturers: manufacturerRepo,
		models:        modelRepo,
	}
	return &EquipmentService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Equipment](repo), logger,
			crudHooks[entities.Equipment, dto.CreateEquipmentDTO, dto.UpdateEquipmentDTO, dto.EquipmentDetailDTO]{
				notFound: msgEquipmentNotFound,
				fromCreate: func(_ context.Context, p dto.CreateEquipmentDTO) (entities.Equipment, error) {
					return entities.Equipment{
						Name:           p.Name,
						Location:       p.Location,
						Image:          p.Image,
						SubsystemID:    p.SubsystemID,
						AssetTypeID:    p.AssetTypeID,
						ManufacturerID: p.ManufacturerID,
						ModelID:        p.ModelID,
					}, nil
				},
				toRead:     equipmentToDetailDTO,
				validate:   v.validate,
				afterWrite: hierarchy.Invalidate,
			}),
	}
}

func (s *EquipmentService) FilterEquipment(ctx context.Context, f dto.EquipmentFilterDTO) ([]dto.EquipmentDetailDTO, error) {
	filter := listFilter()
	if f.SubsystemID != nil {
		filter = filter.With("subsistema_id", *f.SubsystemID)
	}
	if f.ManufacturerID != nil {
		filter = filter.With("fabricante_id", *f.ManufacturerID)
	}
	if f.ModelID != nil {
		filter = filter.With("modelo_id", *f.ModelID)
	}
	items, _, err := s.List(ctx, filter)
	return items, err
}

type equipmentValidator struct {
	subsystems    existsChecker
	assetTypes    existsChecker
	manufacturers existsChecker
	models        repositories.ModelRepositoryInterface
}

// validate checks every referenced row and that the model belongs to the manufacturer.
// On update the stored manufacturer is used when the body does not change it.
func (v equipmentValidator) validate(ctx context.Context, current, next *entities.Equipment) error {
	if current == nil || current.SubsystemID != next.SubsystemID {
		if err := mustExist(ctx, v.subsystems, next.SubsystemID, msgSubsystemNotFound); err != nil {
			return err
		}
	}
	if current == nil || current.AssetTypeID != next.AssetTypeID {
		if err := mustExist(ctx, v.assetTypes, next.AssetTypeID, msgAssetTypeNotFound); err != nil {
			return err
		}
	}
	if next.ManufacturerID != nil {
		if err := mustExist(ctx, v.manufacturers, *next.ManufacturerID, msgManufacturerNotFound); err != nil {
			return err
		}
	}
	if next.ModelID == nil {
		return nil
	}

	model, err := v.models.FindByID(ctx, *next.ModelID)
	if err != nil {
		return notFoundAs(err, msgModelNotFound)
	}
	if next.ManufacturerID != nil && model.ManufacturerID != *next.ManufacturerID {
		return apperrors.NewHttpError(http.StatusBadRequest, msgModelManufacturer,
			fmt.Errorf("%w: modelo %d, fabricante %d", apperrors.ErrBadRequest, model.ID, *next.ManufacturerID), nil)
	}
	return nil
}
