package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/internal/repositories"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/utils"
)

const (
	msgUserNotFound        = "Usuario no encontrado"
	msgRoleNotFound        = "Rol no encontrado"
	msgApplicationNotFound = "Aplicación no encontrada"
	msgUsernameTaken       = "El nombre de usuario ya existe"
)

// Users

type UserServiceInterface interface {
	CrudServiceInterface[dto.CreateUserDTO, dto.UpdateUserDTO, dto.UserDTO]
	GetByUsername(ctx context.Context, username string) (*dto.UserDTO, error)
	SetRole(ctx context.Context, userID, roleID uint64) (*dto.UserDTO, error)
}

type UserService struct {
	crudService[entities.User, dto.CreateUserDTO, dto.UpdateUserDTO, dto.UserDTO]
	userRepo repositories.UserRepositoryInterface
	roleRepo repositories.RoleRepositoryInterface
}

func NewUserService(
	repo repositories.UserRepositoryInterface,
	roleRepo repositories.RoleRepositoryInterface,
	logger *zap.Logger,
) UserServiceInterface {
	s := &UserService{userRepo: repo, roleRepo: roleRepo}
	s.crudService = newCrudService(repositories.CrudRepositoryInterface[entities.User](repo), logger,
		crudHooks[entities.User, dto.CreateUserDTO, dto.UpdateUserDTO, dto.UserDTO]{
			notFound: msgUserNotFound,
			fromCreate: func(_ context.Context, p dto.CreateUserDTO) (entities.User, error) {
				return entities.User{Username: p.Username, Password: p.Password, Email: p.Email, RoleID: p.RoleID}, nil
			},
			toRead:   userToDTO,
			validate: s.validate,
		})
	return s
}

// validate checks role and username and hashes a new plain-text password.
func (s *UserService) validate(ctx context.Context, current, next *entities.User) error {
	if current == nil || current.RoleID != next.RoleID {
		if err := mustExist(ctx, s.roleRepo, next.RoleID, msgRoleNotFound); err != nil {
			return err
		}
	}

	if current == nil || current.Username != next.Username {
		existing, err := s.userRepo.FindByUsername(ctx, next.Username)
		switch {
		case err == nil:
			if current == nil || existing.ID != current.ID {
				return apperrors.NewHttpError(http.StatusBadRequest, msgUsernameTaken,
					fmt.Errorf("%w: %s", apperrors.ErrBadRequest, next.Username), nil)
			}
		case !errors.Is(err, apperrors.ErrNotFound):
			return err
		}
	}

	if current == nil || current.Password != next.Password {
		hash, err := utils.HashPassword(next.Password)
		if err != nil {
			return apperrors.NewInternalError("No se pudo procesar la contraseña", err)
		}
		next.Password = hash
	}
	return nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*dto.UserDTO, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, notFoundAs(err, msgUserNotFound)
	}
	out := userToDTO(*u)
	return &out, nil
}

func (s *UserService) SetRole(ctx context.Context, userID, roleID uint64) (*dto.UserDTO, error) {
	if err := mustExist(ctx, s.repo, userID, msgUserNotFound); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.roleRepo, roleID, msgRoleNotFound); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetRole(ctx, nil, userID, roleID); err != nil {
		return nil, notFoundAs(err, msgUserNotFound)
	}
	return s.Get(ctx, userID)
}

// Roles

type RoleServiceInterface interface {
	CrudServiceInterface[dto.CreateRoleDTO, dto.UpdateRoleDTO, dto.RoleDTO]
	GetWithApplications(ctx context.Context, roleID uint64) (*dto.RoleWithApplicationsDTO, error)
	ListUsers(ctx context.Context, roleID uint64) ([]dto.UserDTO, error)
	LinkApplication(ctx context.Context, roleID, applicationID uint64) (*dto.RoleApplicationDTO, error)
	UnlinkApplication(ctx context.Context, roleID, applicationID uint64) error
}

type RoleService struct {
	crudService[entities.Role, dto.CreateRoleDTO, dto.UpdateRoleDTO, dto.RoleDTO]
	applicationRepo repositories.ApplicationRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
}

func NewRoleService(
	repo repositories.RoleRepositoryInterface,
	applicationRepo repositories.ApplicationRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) RoleServiceInterface {
	return &RoleService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Role](repo), logger,
			crudHooks[entities.Role, dto.CreateRoleDTO, dto.UpdateRoleDTO, dto.RoleDTO]{
				notFound: msgRoleNotFound,
				fromCreate: func(_ context.Context, p dto.CreateRoleDTO) (entities.Role, error) {
					return entities.Role{Description: p.Description}, nil
				},
				toRead: roleToDTO,
			}),
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
	}
}

func (s *RoleService) GetWithApplications(ctx context.Context, roleID uint64) (*dto.RoleWithApplicationsDTO, error) {
	role, err := s.find(ctx, roleID)
	if err != nil {
		return nil, err
	}
	apps, err := s.applicationRepo.FindByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return &dto.RoleWithApplicationsDTO{
		ID:           role.ID,
		Description:  role.Description,
		Applications: mapSlice(apps, applicationToDTO),
	}, nil
}

func (s *RoleService) ListUsers(ctx context.Context, roleID uint64) ([]dto.UserDTO, error) {
	if err := mustExist(ctx, s.repo, roleID, msgRoleNotFound); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return mapSlice(users, userToDTO), nil
}

func (s *RoleService) LinkApplication(ctx context.Context, roleID, applicationID uint64) (*dto.RoleApplicationDTO, error) {
	if err := mustExist(ctx, s.repo, roleID, msgRoleNotFound); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.applicationRepo, applicationID, msgApplicationNotFound); err != nil {
		return nil, err
	}
	linked, err := s.applicationRepo.RoleLinked(ctx, roleID, applicationID)
	if err != nil {
		return nil, err
	}
	if linked {
		return nil, apperrors.NewHttpError(http.StatusConflict, "La aplicación ya está asignada a este rol",
			fmt.Errorf("%w: rol %d, aplicación %d", apperrors.ErrConflict, roleID, applicationID), nil)
	}
	link, err := s.applicationRepo.LinkRole(ctx, nil, roleID, applicationID)
	if err != nil {
		return nil, err
	}
	return &dto.RoleApplicationDTO{ID: link.ID, RoleID: link.RoleID, ApplicationID: link.ApplicationID}, nil
}

func (s *RoleService) UnlinkApplication(ctx context.Context, roleID, applicationID uint64) error {
	if err := s.applicationRepo.UnlinkRole(ctx, nil, roleID, applicationID); err != nil {
		return notFoundAs(err, "Relación rol-aplicación no encontrada")
	}
	return nil
}

// Applications

type ApplicationServiceInterface interface {
	CrudServiceInterface[dto.CreateApplicationDTO, dto.UpdateApplicationDTO, dto.ApplicationDTO]
	ListByRole(ctx context.Context, roleID uint64) ([]dto.ApplicationDTO, error)
}

type ApplicationService struct {
	crudService[entities.Application, dto.CreateApplicationDTO, dto.UpdateApplicationDTO, dto.ApplicationDTO]
	applicationRepo repositories.ApplicationRepositoryInterface
	roleRepo        repositories.RoleRepositoryInterface
}

func NewApplicationService(
	repo repositories.ApplicationRepositoryInterface,
	roleRepo repositories.RoleRepositoryInterface,
	logger *zap.Logger,
) ApplicationServiceInterface {
	return &ApplicationService{
		crudService: newCrudService(repositories.CrudRepositoryInterface[entities.Application](repo), logger,
			crudHooks[entities.Application, dto.CreateApplicationDTO, dto.UpdateApplicationDTO, dto.ApplicationDTO]{
				notFound: msgApplicationNotFound,
				fromCreate: func(_ context.Context, p dto.CreateApplicationDTO) (entities.Application, error) {
					return entities.Application{Name: p.Name, Description: p.Description}, nil
				},
				toRead: applicationToDTO,
			}),
		applicationRepo: repo,
		roleRepo:        roleRepo,
	}
}

func (s *ApplicationService) ListByRole(ctx context.Context, roleID uint64) ([]dto.ApplicationDTO, error) {
	if err := mustExist(ctx, s.roleRepo, roleID, msgRoleNotFound); err != nil {
		return nil, err
	}
	apps, err := s.applicationRepo.FindByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return mapSlice(apps, applicationToDTO), nil
}
