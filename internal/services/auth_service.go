package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/repositories"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/service"
	"game-api/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Refresh(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.AuthResponseDTO, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	jwt      service.JWTService
	logger   *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwt service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, jwt: jwt, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	logger := s.logger.With(zap.String("username", payload.Username))

	user, err := s.userRepo.FindByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("intento de acceso con usuario inexistente")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		logger.Warn("contraseña incorrecta")
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.Info("usuario autenticado", zap.Uint64("id", user.ID))
	return s.issue(userToDTO(*user))
}

func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.AuthResponseDTO, error) {
	claims, err := s.jwt.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return s.issue(userToDTO(*user))
}

func (s *AuthService) issue(user dto.UserDTO) (*dto.AuthResponseDTO, error) {
	access, refresh, err := s.jwt.GenerateTokens(user.ID, user.RoleID)
	if err != nil {
		return nil, apperrors.NewInternalError("No se pudieron generar los tokens", err)
	}
	return &dto.AuthResponseDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwt.GetAccessTokenTTL().Seconds()),
		User:         user,
	}, nil
}
