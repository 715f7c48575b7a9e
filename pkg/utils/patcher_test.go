package utils

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchEntity struct {
	Name      string
	Notes     *string
	ParentID  uint64
	ModelID   *uint64
	Sequence  int64
	Untouched string
}

type patchDTO struct {
	Name     *string     `json:"nombre"`
	Notes    null.String `json:"notas"`
	ParentID *uint64     `json:"padre_id"`
	ModelID  null.Int64  `json:"modelo_id"`
	Sequence *int64      `json:"secuencia"`
}

func TestApplyPatch(t *testing.T) {
	base := func() *patchEntity {
		return &patchEntity{
			Name:      "Bomba",
			Notes:     ToPtr("nota"),
			ParentID:  1,
			ModelID:   ToPtr(uint64(7)),
			Sequence:  3,
			Untouched: "igual",
		}
	}

	t.Run("only sent fields change", func(t *testing.T) {
		entity := base()
		patch := patchDTO{Name: ToPtr("Compresor"), ParentID: ToPtr(uint64(99))}
		require.NoError(t, ApplyPatch(entity, patch, []byte(`{"nombre":"Compresor"}`)))
		assert.Equal(t, "Compresor", entity.Name)
		assert.Equal(t, uint64(1), entity.ParentID)
		assert.Equal(t, "nota", *entity.Notes)
		assert.Equal(t, "igual", entity.Untouched)
	})

	t.Run("null types and pointers", func(t *testing.T) {
		entity := base()
		patch := patchDTO{Notes: null.StringFrom("nueva"), ModelID: null.Int64From(8), Sequence: ToPtr(int64(4))}
		require.NoError(t, ApplyPatch(entity, &patch, []byte(`{"notas":"nueva","modelo_id":8,"secuencia":4}`)))
		assert.Equal(t, "nueva", *entity.Notes)
		assert.Equal(t, uint64(8), *entity.ModelID)
		assert.Equal(t, int64(4), entity.Sequence)
	})

	t.Run("explicit null clears optional fields only", func(t *testing.T) {
		entity := base()
		require.NoError(t, ApplyPatch(entity, patchDTO{}, []byte(`{"notas":null,"modelo_id":null,"nombre":null}`)))
		assert.Nil(t, entity.Notes)
		assert.Nil(t, entity.ModelID)
		assert.Equal(t, "Bomba", entity.Name)
	})

	t.Run("invalid body", func(t *testing.T) {
		assert.Error(t, ApplyPatch(base(), patchDTO{}, []byte(`{`)))
	})
}
