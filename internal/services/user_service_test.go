package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/entities"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/service"
	"game-api/pkg/utils"
)

type fakeUserRepo struct{ *memRepo[entities.User] }

func newFakeUserRepo(seed ...entities.User) *fakeUserRepo {
	return &fakeUserRepo{newMemRepo(
		func(e *entities.User) uint64 { return e.ID },
		func(e *entities.User, id uint64) { e.ID = id }, seed...)}
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range r.all() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) FindByRole(_ context.Context, roleID uint64) ([]entities.User, error) {
	return filterBy(r.all(), func(u entities.User) bool { return u.RoleID == roleID }), nil
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []uint64) ([]entities.User, error) {
	return filterBy(r.all(), func(u entities.User) bool { return inIDs(ids, u.ID) }), nil
}

func (r *fakeUserRepo) SetRole(ctx context.Context, tx pgx.Tx, userID, roleID uint64) error {
	u, err := r.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	u.RoleID = roleID
	return r.Update(ctx, tx, userID, *u)
}

type fakeRoleRepo struct{ *memRepo[entities.Role] }

func newFakeRoleRepo(seed ...entities.Role) *fakeRoleRepo {
	return &fakeRoleRepo{newMemRepo(
		func(e *entities.Role) uint64 { return e.ID },
		func(e *entities.Role, id uint64) { e.ID = id }, seed...)}
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(entities.User{ID: 1, Username: "admin", Password: "x", RoleID: 1})
	roles := newFakeRoleRepo(entities.Role{ID: 1, Description: "Administrador"}, entities.Role{ID: 2, Description: "Técnico"})
	svc := NewUserService(users, roles, zap.NewNop())

	_, err := svc.Create(ctx, dto.CreateUserDTO{Username: "admin", Password: "secreto", RoleID: 1})
	httpErr := requireHTTPCode(t, err, http.StatusBadRequest)
	assert.Equal(t, msgUsernameTaken, httpErr.Message)

	_, err = svc.Create(ctx, dto.CreateUserDTO{Username: "ana", Password: "secreto", RoleID: 9})
	requireHTTPCode(t, err, http.StatusNotFound)

	created, err := svc.Create(ctx, dto.CreateUserDTO{Username: "ana", Password: "secreto", RoleID: 2})
	require.NoError(t, err)
	stored, err := users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreto", stored.Password)
	assert.NoError(t, utils.ComparePasswords(stored.Password, "secreto"))

	t.Run("unrelated update keeps the hash", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, dto.UpdateUserDTO{Email: null.StringFrom("ana@game.co")}, []byte(`{"email":"ana@game.co"}`))
		require.NoError(t, err)
		after, _ := users.FindByID(ctx, created.ID)
		assert.Equal(t, stored.Password, after.Password)
	})

	t.Run("set role", func(t *testing.T) {
		updated, err := svc.SetRole(ctx, created.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), updated.RoleID)

		_, err = svc.SetRole(ctx, created.ID, 5)
		requireHTTPCode(t, err, http.StatusNotFound)
	})

	t.Run("by username", func(t *testing.T) {
		u, err := svc.GetByUsername(ctx, "ana")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)

		_, err = svc.GetByUsername(ctx, "nadie")
		requireHTTPCode(t, err, http.StatusNotFound)
	})
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	users := newFakeUserRepo(entities.User{ID: 1, Username: "admin", Password: hash, RoleID: 1})
	jwt := service.NewJWTService("secreto", time.Minute, time.Hour, zap.NewNop())
	svc := NewAuthService(users, jwt, zap.NewNop())

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "mala"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, dto.LoginDTO{Username: "nadie", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	tokens, err := svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, int64(60), tokens.ExpiresIn)
	assert.Equal(t, "admin", tokens.User.Username)

	_, err = svc.Refresh(ctx, dto.RefreshTokenDTO{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)

	refreshed, err := svc.Refresh(ctx, dto.RefreshTokenDTO{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

type roleApp struct{ roleID, applicationID uint64 }

type fakeApplicationRepo struct {
	*memRepo[entities.Application]
	links  map[roleApp]uint64
	nextID uint64
}

func newFakeApplicationRepo(seed ...entities.Application) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		memRepo: newMemRepo(
			func(e *entities.Application) uint64 { return e.ID },
			func(e *entities.Application, id uint64) { e.ID = id }, seed...),
		links: map[roleApp]uint64{},
	}
}

func (r *fakeApplicationRepo) FindByRole(_ context.Context, roleID uint64) ([]entities.Application, error) {
	return filterBy(r.all(), func(a entities.Application) bool {
		_, ok := r.links[roleApp{roleID, a.ID}]
		return ok
	}), nil
}

func (r *fakeApplicationRepo) LinkRole(_ context.Context, _ pgx.Tx, roleID, applicationID uint64) (*entities.RoleApplication, error) {
	r.nextID++
	r.links[roleApp{roleID, applicationID}] = r.nextID
	return &entities.RoleApplication{ID: r.nextID, RoleID: roleID, ApplicationID: applicationID}, nil
}

func (r *fakeApplicationRepo) UnlinkRole(_ context.Context, _ pgx.Tx, roleID, applicationID uint64) error {
	key := roleApp{roleID, applicationID}
	if _, ok := r.links[key]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.links, key)
	return nil
}

func (r *fakeApplicationRepo) RoleLinked(_ context.Context, roleID, applicationID uint64) (bool, error) {
	_, ok := r.links[roleApp{roleID, applicationID}]
	return ok, nil
}

func TestRoleService_LinkApplication(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		roleID        uint64
		applicationID uint64
		code          int
		message       string
	}{
		{name: "links", roleID: 2, applicationID: 20},
		{name: "already linked", roleID: 1, applicationID: 10, code: http.StatusConflict},
		{name: "missing role", roleID: 9, applicationID: 10, code: http.StatusNotFound, message: msgRoleNotFound},
		{name: "missing application", roleID: 1, applicationID: 99, code: http.StatusNotFound, message: msgApplicationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := newFakeRoleRepo(entities.Role{ID: 1, Description: "Administrador"}, entities.Role{ID: 2, Description: "Técnico"})
			apps := newFakeApplicationRepo(entities.Application{ID: 10, Name: "Activos"}, entities.Application{ID: 20, Name: "Mantenimiento"})
			apps.links[roleApp{1, 10}] = 100
			svc := NewRoleService(roles, apps, newFakeUserRepo(), zap.NewNop())

			got, err := svc.LinkApplication(ctx, tt.roleID, tt.applicationID)
			if tt.code != 0 {
				httpErr := requireHTTPCode(t, err, tt.code)
				if tt.message != "" {
					assert.Equal(t, tt.message, httpErr.Message)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.roleID, got.RoleID)
			assert.Equal(t, tt.applicationID, got.ApplicationID)

			withApps, err := svc.GetWithApplications(ctx, tt.roleID)
			require.NoError(t, err)
			require.Len(t, withApps.Applications, 1)
			assert.Equal(t, "Mantenimiento", withApps.Applications[0].Name)
		})
	}
}

func TestRoleService_UnlinkApplication(t *testing.T) {
	ctx := context.Background()
	roles := newFakeRoleRepo(entities.Role{ID: 1, Description: "Administrador"})
	apps := newFakeApplicationRepo(entities.Application{ID: 10, Name: "Activos"})
	apps.links[roleApp{1, 10}] = 100
	svc := NewRoleService(roles, apps, newFakeUserRepo(), zap.NewNop())

	require.NoError(t, svc.UnlinkApplication(ctx, 1, 10))
	linked, err := apps.RoleLinked(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, linked)

	httpErr := requireHTTPCode(t, svc.UnlinkApplication(ctx, 1, 10), http.StatusNotFound)
	assert.Equal(t, "Relación rol-aplicación no encontrada", httpErr.Message)
}

func TestApplicationService_ListByRole(t *testing.T) {
	ctx := context.Background()
	roles := newFakeRoleRepo(entities.Role{ID: 1, Description: "Administrador"})
	apps := newFakeApplicationRepo(entities.Application{ID: 10, Name: "Activos"}, entities.Application{ID: 20, Name: "Personal"})
	apps.links[roleApp{1, 20}] = 1
	svc := NewApplicationService(apps, roles, zap.NewNop())

	got, err := svc.ListByRole(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Personal", got[0].Name)

	_, err = svc.ListByRole(ctx, 9)
	requireHTTPCode(t, err, http.StatusNotFound)
}
