package services

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/pkg/filestorage"
	"game-api/pkg/types"
	"game-api/pkg/utils"
)

type fakeModelRepo struct{ *memRepo[entities.EquipmentModel] }

func (r *fakeModelRepo) FindByManufacturers(_ context.Context, ids []uint64) ([]entities.EquipmentModel, error) {
	return filterBy(r.all(), func(m entities.EquipmentModel) bool { return inIDs(ids, m.ManufacturerID) }), nil
}

func TestEquipmentValidator(t *testing.T) {
	ctx := context.Background()
	v := equipmentValidator{
		subsystems: newFakeSubsystemRepo(entities.Subsystem{ID: 20, SystemID: 10}),
		assetTypes: newMemRepo(
			func(e *entities.AssetType) uint64 { return e.ID },
			func(e *entities.AssetType, id uint64) { e.ID = id },
			entities.AssetType{ID: 1, Description: "Bomba"}),
		manufacturers: newMemRepo(
			func(e *entities.Manufacturer) uint64 { return e.ID },
			func(e *entities.Manufacturer, id uint64) { e.ID = id },
			entities.Manufacturer{ID: 5, Name: "Goulds"}, entities.Manufacturer{ID: 6, Name: "Siemens"}),
		models: &fakeModelRepo{newMemRepo(
			func(e *entities.EquipmentModel) uint64 { return e.ID },
			func(e *entities.EquipmentModel, id uint64) { e.ID = id },
			entities.EquipmentModel{ID: 50, Name: "3196", ManufacturerID: 5})},
	}

	valid := entities.Equipment{Name: "Bomba 1", SubsystemID: 20, AssetTypeID: 1}

	tests := []struct {
		name    string
		current *entities.Equipment
		next    entities.Equipment
		code    int
		message string
	}{
		{name: "minimal", next: valid},
		{name: "model of manufacturer", next: with(valid, func(e *entities.Equipment) {
			e.ManufacturerID, e.ModelID = utils.ToPtr(uint64(5)), utils.ToPtr(uint64(50))
		})},
		{name: "model without manufacturer", next: with(valid, func(e *entities.Equipment) {
			e.ModelID = utils.ToPtr(uint64(50))
		})},
		{name: "missing subsystem", next: with(valid, func(e *entities.Equipment) { e.SubsystemID = 99 }),
			code: http.StatusNotFound, message: msgSubsystemNotFound},
		{name: "missing asset type", next: with(valid, func(e *entities.Equipment) { e.AssetTypeID = 99 }),
			code: http.StatusNotFound, message: msgAssetTypeNotFound},
		{name: "missing manufacturer", next: with(valid, func(e *entities.Equipment) { e.ManufacturerID = utils.ToPtr(uint64(99)) }),
			code: http.StatusNotFound, message: msgManufacturerNotFound},
		{name: "missing model", next: with(valid, func(e *entities.Equipment) { e.ModelID = utils.ToPtr(uint64(99)) }),
			code: http.StatusNotFound, message: msgModelNotFound},
		{name: "model of another manufacturer", next: with(valid, func(e *entities.Equipment) {
			e.ManufacturerID, e.ModelID = utils.ToPtr(uint64(6)), utils.ToPtr(uint64(50))
		}), code: http.StatusBadRequest, message: msgModelManufacturer},
		{name: "unchanged references are not rechecked",
			current: &entities.Equipment{SubsystemID: 77, AssetTypeID: 88},
			next:    entities.Equipment{Name: "x", SubsystemID: 77, AssetTypeID: 88}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.next
			err := v.validate(ctx, tt.current, &next)
			if tt.code == 0 {
				assert.NoError(t, err)
				return
			}
			httpErr := requireHTTPCode(t, err, tt.code)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func with(e entities.Equipment, fn func(*entities.Equipment)) entities.Equipment {
	fn(&e)
	return e
}

func newFakeManufacturerRepo() *memRepo[entities.Manufacturer] {
	return newMemRepo(
		func(e *entities.Manufacturer) uint64 { return e.ID },
		func(e *entities.Manufacturer, id uint64) { e.ID = id },
		entities.Manufacturer{ID: 5, Name: "Goulds"}, entities.Manufacturer{ID: 6, Name: "Siemens"})
}

func newFakeModelRepo() *fakeModelRepo {
	return &fakeModelRepo{newMemRepo(
		func(e *entities.EquipmentModel) uint64 { return e.ID },
		func(e *entities.EquipmentModel, id uint64) { e.ID = id },
		entities.EquipmentModel{ID: 50, Name: "3196", ManufacturerID: 5},
		entities.EquipmentModel{ID: 51, Name: "3410", ManufacturerID: 5})}
}

func TestManufacturerService_Models(t *testing.T) {
	ctx := context.Background()
	svc := NewManufacturerService(newFakeManufacturerRepo(), newFakeModelRepo(), zap.NewNop())

	t.Run("with models groups by manufacturer", func(t *testing.T) {
		got, total, err := svc.ListWithModels(ctx, types.NewFilter())
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, got, 2)
		assert.Equal(t, "Goulds", got[0].Name)
		assert.Len(t, got[0].Models, 2)
		assert.NotNil(t, got[1].Models)
		assert.Empty(t, got[1].Models)
	})

	t.Run("models of one manufacturer", func(t *testing.T) {
		models, err := svc.ListModels(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, models, 2)

		models, err = svc.ListModels(ctx, 6)
		require.NoError(t, err)
		assert.Empty(t, models)
	})

	t.Run("missing manufacturer", func(t *testing.T) {
		_, err := svc.ListModels(ctx, 99)
		httpErr := requireHTTPCode(t, err, http.StatusNotFound)
		assert.Equal(t, msgManufacturerNotFound, httpErr.Message)
	})
}

func TestModelService_ManufacturerCheck(t *testing.T) {
	ctx := context.Background()
	svc := NewModelService(newFakeModelRepo(), newFakeManufacturerRepo(), zap.NewNop())

	tests := []struct {
		name string
		run  func() (*dto.ModelDetailDTO, error)
		code int
	}{
		{name: "create", run: func() (*dto.ModelDetailDTO, error) {
			return svc.Create(ctx, dto.CreateModelDTO{Name: "S7", ManufacturerID: 6})
		}},
		{name: "create with missing manufacturer", code: http.StatusNotFound, run: func() (*dto.ModelDetailDTO, error) {
			return svc.Create(ctx, dto.CreateModelDTO{Name: "S7", ManufacturerID: 99})
		}},
		{name: "update keeps manufacturer", run: func() (*dto.ModelDetailDTO, error) {
			return svc.Update(ctx, 50, dto.UpdateModelDTO{Name: utils.ToPtr("3196 ST")}, []byte(`{"nombre":"3196 ST"}`))
		}},
		{name: "update to missing manufacturer", code: http.StatusNotFound, run: func() (*dto.ModelDetailDTO, error) {
			return svc.Update(ctx, 50, dto.UpdateModelDTO{ManufacturerID: utils.ToPtr(uint64(99))}, []byte(`{"fabricante_id":99}`))
		}},
		{name: "update missing model", code: http.StatusNotFound, run: func() (*dto.ModelDetailDTO, error) {
			return svc.Update(ctx, 77, dto.UpdateModelDTO{Name: utils.ToPtr("x")}, []byte(`{"nombre":"x"}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			if tt.code != 0 {
				requireHTTPCode(t, err, tt.code)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, got.ID)
		})
	}
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestAssetTypeService(t *testing.T, image *string) (AssetTypeServiceInterface, *memRepo[entities.AssetType], string) {
	t.Helper()
	root := t.TempDir()
	storage, err := filestorage.NewLocalFileStorage(filepath.Join(root, "assets"), "/assets")
	require.NoError(t, err)
	repo := newMemRepo(
		func(e *entities.AssetType) uint64 { return e.ID },
		func(e *entities.AssetType, id uint64) { e.ID = id },
		entities.AssetType{ID: 1, Description: "Bomba", Image: image})
	return NewAssetTypeService(repo, storage, zap.NewNop()), repo, root
}

func TestAssetTypeService_UploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the image and replaces the previous upload", func(t *testing.T) {
		svc, _, root := newTestAssetTypeService(t, nil)

		first, err := svc.UploadImage(ctx, 1, bytes.NewReader(pngHeader), "Bomba.PNG")
		require.NoError(t, err)
		require.NotNil(t, first.Image)
		assert.True(t, strings.HasPrefix(*first.Image, "/assets/tipos-activo/"))
		assert.True(t, strings.HasSuffix(*first.Image, ".png"))
		firstPath := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(*first.Image, "/")))
		assert.FileExists(t, firstPath)

		second, err := svc.UploadImage(ctx, 1, bytes.NewReader(pngHeader), "otra.png")
		require.NoError(t, err)
		assert.NotEqual(t, *first.Image, *second.Image)
		assert.NoFileExists(t, firstPath)
	})

	t.Run("values outside the upload folder are never removed", func(t *testing.T) {
		for _, previous := range []string{"../secret.txt", "/assets/../secret.txt", "/assets/tipos-activo/../../secret.txt", "secret.txt"} {
			svc, repo, root := newTestAssetTypeService(t, utils.ToPtr(previous))
			victim := filepath.Join(root, "secret.txt")
			require.NoError(t, os.WriteFile(victim, []byte("no borrar"), 0o600))
			inside := filepath.Join(root, "assets", "secret.txt")
			require.NoError(t, os.WriteFile(inside, []byte("no borrar"), 0o600))

			got, err := svc.UploadImage(ctx, 1, bytes.NewReader(pngHeader), "bomba.png")
			require.NoError(t, err, previous)
			assert.FileExists(t, victim, previous)
			assert.FileExists(t, inside, previous)

			stored, err := repo.FindByID(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, got.Image, stored.Image)
		}
	})

	t.Run("missing asset type", func(t *testing.T) {
		svc, _, _ := newTestAssetTypeService(t, nil)
		_, err := svc.UploadImage(ctx, 9, bytes.NewReader(pngHeader), "bomba.png")
		httpErr := requireHTTPCode(t, err, http.StatusNotFound)
		assert.Equal(t, msgAssetTypeNotFound, httpErr.Message)
	})
}
