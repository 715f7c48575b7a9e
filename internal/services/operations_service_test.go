package services

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/pkg/utils"
)

type fakeActivityRepo struct {
	*memRepo[entities.Activity]
	details    []entities.ActivityDetail
	lastFilter entities.ActivityDetailFilter
}

func (r *fakeActivityRepo) FindDetailed(_ context.Context, f entities.ActivityDetailFilter) ([]entities.ActivityDetail, error) {
	r.lastFilter = f
	return r.details, nil
}

type fakePersonRepo struct{ *memRepo[entities.Person] }

func (r *fakePersonRepo) FindByPosition(_ context.Context, positionID uint64) ([]entities.Person, error) {
	return filterBy(r.all(), func(e entities.Person) bool {
		return e.PositionID != nil && *e.PositionID == positionID
	}), nil
}

func newTestActivityService(details ...entities.ActivityDetail) (ActivityServiceInterface, *fakeActivityRepo) {
	activities := &fakeActivityRepo{
		memRepo: newMemRepo(
			func(e *entities.Activity) uint64 { return e.ID },
			func(e *entities.Activity, id uint64) { e.ID = id }),
		details: details,
	}
	equipment := newFakeEquipmentRepo(entities.Equipment{ID: 30, Name: "Bomba 1", SubsystemID: 20})
	persons := &fakePersonRepo{newMemRepo(
		func(e *entities.Person) uint64 { return e.ID },
		func(e *entities.Person, id uint64) { e.ID = id },
		entities.Person{ID: 1001, Name: "Ana"})}
	return NewActivityService(activities, equipment, persons, zap.NewNop()), activities
}

func TestActivityService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestActivityService()

	_, err := svc.Create(ctx, dto.CreateActivityDTO{Description: "Engrase", Date: "2024-13-40", EquipmentID: 30, PersonID: 1001})
	requireHTTPCode(t, err, http.StatusBadRequest)

	_, err = svc.Create(ctx, dto.CreateActivityDTO{Description: "Engrase", Date: "2024-05-01", EquipmentID: 99, PersonID: 1001})
	requireHTTPCode(t, err, http.StatusNotFound)

	_, err = svc.Create(ctx, dto.CreateActivityDTO{Description: "Engrase", Date: "2024-05-01", EquipmentID: 30, PersonID: 7})
	requireHTTPCode(t, err, http.StatusNotFound)

	created, err := svc.Create(ctx, dto.CreateActivityDTO{Description: "Engrase", Date: "2024-05-01", EquipmentID: 30, PersonID: 1001})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", created.Date)

	updated, err := svc.Update(ctx, created.ID, dto.UpdateActivityDTO{Date: utils.ToPtr("2024-06-15")}, []byte(`{"fecha":"2024-06-15"}`))
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", updated.Date)
	assert.Equal(t, "Engrase", updated.Description)
}

func TestActivityService_Export(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	svc, repo := newTestActivityService(
		entities.ActivityDetail{ID: 1, Date: day, Description: "Engrase", PersonName: "Ana", PositionName: utils.ToPtr("Técnico"), EquipmentName: "Bomba 1"},
		entities.ActivityDetail{ID: 2, Date: day, Description: "Inspección", PersonName: "Luis", EquipmentName: "Motor"},
	)

	data, err := svc.Export(ctx, dto.ActivityDetailFilterDTO{From: "2024-01-01"})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.From)
	assert.Nil(t, repo.lastFilter.To)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(activitySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Fecha", "Descripción", "Persona", "Cargo", "Equipo"}, rows[0])
	assert.Equal(t, []string{"2024-05-01", "Engrase", "Ana", "Técnico", "Bomba 1"}, rows[1])
	assert.Equal(t, "", rows[2][3])

	_, err = svc.Export(ctx, dto.ActivityDetailFilterDTO{To: "ayer"})
	requireHTTPCode(t, err, http.StatusBadRequest)
}
