package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/internal/repositories"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/utils"
)

const (
	msgPositionNotFound = "Cargo no encontrado"
	msgPersonNotFound   = "Persona no encontrada"
	msgActivityNotFound = "Actividad no encontrada"

	activitySheet = "Actividades"
)

var activityExportHeader = []interface{}{"Fecha", "Descripción", "Persona", "Cargo", "Equipo"}

// Positions

type PositionServiceInterface interface {
	CrudServiceInterface[dto.CreatePositionDTO, dto.UpdatePositionDTO, dto.PositionDTO]
	ListPersons(ctx context.Context, positionID uint64) ([]dto.PersonDTO, error)
}

type PositionService struct {
	crudService[entities.Position, dto.CreatePositionDTO, dto.UpdatePositionDTO, dto.PositionDTO]
	personRepo repositories.PersonRepositoryInterface
}

func NewPositionService(
	repo repositories.PositionRepositoryInterface,
	personRepo repositories.PersonRepositoryInterface,
	logger *zap.Logger,
) PositionServiceInterface {
	return &PositionService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Position](repo), logger,
			crudHooks[entities.Position, dto.CreatePositionDTO, dto.UpdatePositionDTO, dto.PositionDTO]{
				notFound: msgPositionNotFound,
				fromCreate: func(_ context.Context, p dto.CreatePositionDTO) (entities.Position, error) {
					return entities.Position{Description: p.Description}, nil
				},
				toRead: positionToDTO,
			}),
		personRepo: personRepo,
	}
}

func (s *PositionService) ListPersons(ctx context.Context, positionID uint64) ([]dto.PersonDTO, error) {
	if err := mustExist(ctx, s.repo, positionID, msgPositionNotFound); err != nil {
		return nil, err
	}
	persons, err := s.personRepo.FindByPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	return mapSlice(persons, personToDTO), nil
}

// Persons

type PersonServiceInterface interface {
	CrudServiceInterface[dto.CreatePersonDTO, dto.UpdatePersonDTO, dto.PersonDTO]
}

type PersonService struct {
	crudService[entities.Person, dto.CreatePersonDTO, dto.UpdatePersonDTO, dto.PersonDTO]
}

func NewPersonService(
	repo repositories.PersonRepositoryInterface,
	positionRepo repositories.PositionRepositoryInterface,
	logger *zap.Logger,
) PersonServiceInterface {
	return &PersonService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Person](repo), logger,
			crudHooks[entities.Person, dto.CreatePersonDTO, dto.UpdatePersonDTO, dto.PersonDTO]{
				notFound: msgPersonNotFound,
				fromCreate: func(_ context.Context, p dto.CreatePersonDTO) (entities.Person, error) {
					return entities.Person{ID: p.ID, Name: p.Name, PositionID: p.PositionID}, nil
				},
				toRead: personToDTO,
				validate: func(ctx context.Context, _ *entities.Person, next *entities.Person) error {
					// cargo_id 0 means "no position"
					if next.PositionID != nil && *next.PositionID == 0 {
						next.PositionID = nil
					}
					if next.PositionID == nil {
						return nil
					}
					return mustExist(ctx, positionRepo, *next.PositionID, msgPositionNotFound)
				},
			}),
	}
}

// Activities

type ActivityServiceInterface interface {
	CrudServiceInterface[dto.CreateActivityDTO, dto.UpdateActivityDTO, dto.ActivityDTO]
	ListDetailed(ctx context.Context, f dto.ActivityDetailFilterDTO) ([]dto.ActivityDetailDTO, error)
	// Export renders the detailed activities as an xlsx workbook.
	Export(ctx context.Context, f dto.ActivityDetailFilterDTO) ([]byte, error)
}

type ActivityService struct {
	crudService[entities.Activity, dto.CreateActivityDTO, dto.UpdateActivityDTO, dto.ActivityDTO]
	activityRepo repositories.ActivityRepositoryInterface
}

func NewActivityService(
	repo repositories.ActivityRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	personRepo repositories.PersonRepositoryInterface,
	logger *zap.Logger,
) ActivityServiceInterface {
	return &ActivityService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Activity](repo), logger,
			crudHooks[entities.Activity, dto.CreateActivityDTO, dto.UpdateActivityDTO, dto.ActivityDTO]{
				notFound: msgActivityNotFound,
				fromCreate: func(_ context.Context, p dto.CreateActivityDTO) (entities.Activity, error) {
					date, err := parseDate(p.Date)
					if err != nil {
						return entities.Activity{}, err
					}
					return entities.Activity{
						Description: p.Description,
						Date:        date,
						EquipmentID: p.EquipmentID,
						PersonID:    p.PersonID,
					}, nil
				},
				toRead: activityToDTO,
				patch:  patchActivity,
				validate: func(ctx context.Context, current, next *entities.Activity) error {
					if current == nil || current.EquipmentID != next.EquipmentID {
						if err := mustExist(ctx, equipmentRepo, next.EquipmentID, msgEquipmentNotFound); err != nil {
							return err
						}
					}
					if current == nil || current.PersonID != next.PersonID {
						if err := mustExist(ctx, personRepo, next.PersonID, msgPersonNotFound); err != nil {
							return err
						}
					}
					return nil
				},
			}),
		activityRepo: repo,
	}
}

func (s *ActivityService) ListDetailed(ctx context.Context, f dto.ActivityDetailFilterDTO) ([]dto.ActivityDetailDTO, error) {
	details, err := s.detailed(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapSlice(details, activityDetailToDTO), nil
}

func (s *ActivityService) Export(ctx context.Context, f dto.ActivityDetailFilterDTO) ([]byte, error) {
	details, err := s.detailed(ctx, f)
	if err != nil {
		return nil, err
	}

	book := excelize.NewFile()
	defer func() {
		if err := book.Close(); err != nil {
			s.logger.Warn("error al cerrar el libro", zap.Error(err))
		}
	}()

	if err := book.SetSheetName("Sheet1", activitySheet); err != nil {
		return nil, err
	}
	if err := book.SetSheetRow(activitySheet, "A1", &activityExportHeader); err != nil {
		return nil, err
	}
	for i, d := range details {
		var position interface{}
		if d.PositionName != nil {
			position = *d.PositionName
		}
		row := []interface{}{d.Date.Format(dateLayout), d.Description, d.PersonName, position, d.EquipmentName}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := book.SetSheetRow(activitySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		return nil, apperrors.NewInternalError("No se pudo generar el archivo Excel", err)
	}
	s.logger.Info("actividades exportadas", zap.Int("filas", len(details)))
	return buf.Bytes(), nil
}

func (s *ActivityService) detailed(ctx context.Context, f dto.ActivityDetailFilterDTO) ([]entities.ActivityDetail, error) {
	filter := entities.ActivityDetailFilter{PersonID: f.PersonID, EquipmentID: f.EquipmentID}
	if f.From != "" {
		from, err := parseDate(f.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if f.To != "" {
		to, err := parseDate(f.To)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}
	return s.activityRepo.FindDetailed(ctx, filter)
}

// patchActivity applies the generic patch and then the date, which arrives as text.
func patchActivity(e *entities.Activity, payload dto.UpdateActivityDTO, rawBody []byte) error {
	if err := utils.ApplyPatch(e, &payload, rawBody); err != nil {
		return err
	}
	if payload.Date != nil {
		date, err := parseDate(*payload.Date)
		if err != nil {
			return err
		}
		e.Date = date
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("Fecha no válida '%s', se espera AAAA-MM-DD", s),
			fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err), nil)
	}
	return t, nil
}
