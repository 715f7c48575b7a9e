package services

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/internal/repositories"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/types"
	"game-api/pkg/utils"
)

const (
	msgClientNotFound   = "Cliente no encontrado"
	msgContractNotFound = "Contrato no encontrado"
)

// Clients

type ClientServiceInterface interface {
	CrudServiceInterface[dto.CreateClientDTO, dto.UpdateClientDTO, dto.ClientDTO]
	ListWithContracts(ctx context.Context) ([]dto.ClientWithContractsDTO, error)
	GetWithContracts(ctx context.Context, clientID uint64) (*dto.ClientWithContractsDTO, error)
	ListContracts(ctx context.Context, clientID uint64) ([]dto.ContractDTO, error)
	LinkContract(ctx context.Context, clientID, contractID uint64) (*dto.ContractDTO, error)
	UnlinkContract(ctx context.Context, clientID, contractID uint64) error
}

type ClientService struct {
	crudService[entities.Client, dto.CreateClientDTO, dto.UpdateClientDTO, dto.ClientDTO]
	clientRepo   repositories.ClientRepositoryInterface
	contractRepo repositories.ContractRepositoryInterface
}

func NewClientService(
	repo repositories.ClientRepositoryInterface,
	contractRepo repositories.ContractRepositoryInterface,
	logger *zap.Logger,
) ClientServiceInterface {
	return &ClientService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Client](repo), logger,
			crudHooks[entities.Client, dto.CreateClientDTO, dto.UpdateClientDTO, dto.ClientDTO]{
				notFound: msgClientNotFound,
				fromCreate: func(_ context.Context, p dto.CreateClientDTO) (entities.Client, error) {
					return entities.Client{Name: p.Name, Description: p.Description}, nil
				},
				toRead: clientToDTO,
			}),
		clientRepo:   repo,
		contractRepo: contractRepo,
	}
}

func (s *ClientService) ListWithContracts(ctx context.Context) ([]dto.ClientWithContractsDTO, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contractRepo.FindByClients(ctx, ids(clients, func(c entities.Client) uint64 { return c.ID }))
	if err != nil {
		return nil, err
	}

	byClient := make(map[uint64][]dto.ContractDTO)
	for _, k := range contracts {
		if k.ClientID != nil {
			byClient[*k.ClientID] = append(byClient[*k.ClientID], contractToDTO(k))
		}
	}

	out := make([]dto.ClientWithContractsDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientWithContracts(c, byClient[c.ID]))
	}
	return out, nil
}

func (s *ClientService) GetWithContracts(ctx context.Context, clientID uint64) (*dto.ClientWithContractsDTO, error) {
	client, err := s.find(ctx, clientID)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contractRepo.FindByClients(ctx, []uint64{clientID})
	if err != nil {
		return nil, err
	}
	out := clientWithContracts(*client, mapSlice(contracts, contractToDTO))
	return &out, nil
}

func (s *ClientService) ListContracts(ctx context.Context, clientID uint64) ([]dto.ContractDTO, error) {
	if err := mustExist(ctx, s.repo, clientID, msgClientNotFound); err != nil {
		return nil, err
	}
	contracts, err := s.contractRepo.FindByClients(ctx, []uint64{clientID})
	if err != nil {
		return nil, err
	}
	return mapSlice(contracts, contractToDTO), nil
}

func (s *ClientService) LinkContract(ctx context.Context, clientID, contractID uint64) (*dto.ContractDTO, error) {
	if err := mustExist(ctx, s.repo, clientID, msgClientNotFound); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.contractRepo, contractID, msgContractNotFound); err != nil {
		return nil, err
	}
	if err := s.contractRepo.SetClient(ctx, nil, contractID, &clientID); err != nil {
		return nil, notFoundAs(err, msgContractNotFound)
	}
	return s.contract(ctx, contractID)
}

func (s *ClientService) UnlinkContract(ctx context.Context, clientID, contractID uint64) error {
	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return notFoundAs(err, msgContractNotFound)
	}
	if contract.ClientID == nil || *contract.ClientID != clientID {
		return apperrors.NewHttpError(http.StatusBadRequest, "El contrato no está asociado a este cliente",
			fmt.Errorf("%w: contrato %d, cliente %d", apperrors.ErrBadRequest, contractID, clientID), nil)
	}
	return s.contractRepo.SetClient(ctx, nil, contractID, nil)
}

func (s *ClientService) contract(ctx context.Context, id uint64) (*dto.ContractDTO, error) {
	k, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgContractNotFound)
	}
	out := contractToDTO(*k)
	return &out, nil
}

func clientWithContracts(c entities.Client, contracts []dto.ContractDTO) dto.ClientWithContractsDTO {
	if contracts == nil {
		contracts = []dto.ContractDTO{}
	}
	return dto.ClientWithContractsDTO{ID: c.ID, Name: c.Name, Description: c.Description, Contracts: contracts}
}

// Contracts

type ContractServiceInterface interface {
	CrudServiceInterface[dto.CreateContractDTO, dto.UpdateContractDTO, dto.ContractDTO]
	ListByUser(ctx context.Context, userID uint64) ([]dto.ContractDTO, error)
	GetWithPlants(ctx context.Context, contractID uint64) (*dto.ContractWithPlantsDTO, error)
	ListUsers(ctx context.Context, contractID uint64) ([]dto.UserDTO, error)
	LinkUser(ctx context.Context, userID, contractID uint64) (*dto.ContractUserDTO, error)
	UnlinkUser(ctx context.Context, userID, contractID uint64) error
}

type ContractService struct {
	crudService[entities.Contract, dto.CreateContractDTO, dto.UpdateContractDTO, dto.ContractDTO]
	contractRepo repositories.ContractRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	plantRepo    repositories.PlantRepositoryInterface
}

func NewContractService(
	repo repositories.ContractRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	plantRepo repositories.PlantRepositoryInterface,
	logger *zap.Logger,
) ContractServiceInterface {
	return &ContractService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Contract](repo), logger,
			crudHooks[entities.Contract, dto.CreateContractDTO, dto.UpdateContractDTO, dto.ContractDTO]{
				notFound: msgContractNotFound,
				fromCreate: func(_ context.Context, p dto.CreateContractDTO) (entities.Contract, error) {
					return entities.Contract{Name: p.Name, Description: p.Description, ClientID: p.ClientID}, nil
				},
				toRead: contractToDTO,
				validate: func(ctx context.Context, current, next *entities.Contract) error {
					if next.ClientID == nil {
						return nil
					}
					if current != nil && utils.EqualPtr(current.ClientID, next.ClientID) {
						return nil
					}
					return mustExist(ctx, clientRepo, *next.ClientID, msgClientNotFound)
				},
			}),
		contractRepo: repo,
		userRepo:     userRepo,
		plantRepo:    plantRepo,
	}
}

func (s *ContractService) ListByUser(ctx context.Context, userID uint64) ([]dto.ContractDTO, error) {
	if err := mustExist(ctx, s.userRepo, userID, msgUserNotFound); err != nil {
		return nil, err
	}
	contracts, err := s.contractRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapSlice(contracts, contractToDTO), nil
}

func (s *ContractService) GetWithPlants(ctx context.Context, contractID uint64) (*dto.ContractWithPlantsDTO, error) {
	k, err := s.find(ctx, contractID)
	if err != nil {
		return nil, err
	}
	plants, err := s.plantRepo.FindByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return &dto.ContractWithPlantsDTO{
		ID:          k.ID,
		Name:        k.Name,
		Description: k.Description,
		ClientID:    k.ClientID,
		Plants:      mapSlice(plants, plantToDTO),
	}, nil
}

func (s *ContractService) ListUsers(ctx context.Context, contractID uint64) ([]dto.UserDTO, error) {
	if err := mustExist(ctx, s.repo, contractID, msgContractNotFound); err != nil {
		return nil, err
	}
	userIDs, err := s.contractRepo.FindUserIDs(ctx, contractID)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return mapSlice(users, userToDTO), nil
}

func (s *ContractService) LinkUser(ctx context.Context, userID, contractID uint64) (*dto.ContractUserDTO, error) {
	if err := mustExist(ctx, s.userRepo, userID, msgUserNotFound); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.repo, contractID, msgContractNotFound); err != nil {
		return nil, err
	}
	linked, err := s.contractRepo.UserLinked(ctx, userID, contractID)
	if err != nil {
		return nil, err
	}
	if linked {
		return nil, apperrors.NewHttpError(http.StatusConflict, "El usuario ya está asociado a este contrato",
			fmt.Errorf("%w: usuario %d, contrato %d", apperrors.ErrConflict, userID, contractID), nil)
	}
	if err := s.contractRepo.LinkUser(ctx, nil, userID, contractID); err != nil {
		return nil, err
	}
	return &dto.ContractUserDTO{UserID: userID, ContractID: contractID}, nil
}

func (s *ContractService) UnlinkUser(ctx context.Context, userID, contractID uint64) error {
	if err := s.contractRepo.UnlinkUser(ctx, nil, userID, contractID); err != nil {
		return notFoundAs(err, "Relación usuario-contrato no encontrada")
	}
	return nil
}

// listFilter returns a filter without pagination for internal lookups.
func listFilter() types.Filter {
	f := types.NewFilter()
	f.WithPagination = false
	return f
}
