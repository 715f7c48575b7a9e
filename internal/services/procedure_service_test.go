package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/pkg/llm"
)

type fakeCompleter struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, _, userPrompt string) (string, error) {
	f.lastPrompt = userPrompt
	return f.reply, f.err
}

func (f *fakeCompleter) Name() string { return "fake" }

const validProcedure = "```json\n" + `{
  "pasos": [
    {"titulo": "Aislar", "descripcion": "Desenergizar el equipo", "notas": null},
    {"titulo": "Inspeccionar", "descripcion": "Revisar sellos", "notas": "Usar linterna"}
  ],
  "precauciones": "Bloqueo y etiquetado",
  "herramientas": "Llaves, multímetro"
}` + "\n```"

func TestProcedureService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("parses fenced json", func(t *testing.T) {
		completer := &fakeCompleter{reply: validProcedure}
		svc, err := NewProcedureService(completer, zap.NewNop())
		require.NoError(t, err)

		procedure, err := svc.Generate(ctx, dto.GenerateProcedureDTO{EquipmentType: "Bomba centrífuga", Brand: "Goulds"})
		require.NoError(t, err)
		require.Len(t, procedure.Steps, 2)
		assert.Equal(t, "Aislar", procedure.Steps[0].Title)
		assert.Nil(t, procedure.Steps[0].Notes)
		assert.Equal(t, "Usar linterna", *procedure.Steps[1].Notes)
		assert.Equal(t, "Bloqueo y etiquetado", procedure.Precautions)

		assert.Contains(t, completer.lastPrompt, "Tipo de Equipo: Bomba centrífuga")
		assert.Contains(t, completer.lastPrompt, "Marca: Goulds")
		assert.Contains(t, completer.lastPrompt, "Modelo: "+defaultBrand)
	})

	t.Run("schema violation", func(t *testing.T) {
		svc, err := NewProcedureService(&fakeCompleter{reply: `{"pasos": [{"titulo": "x"}], "precauciones": "a"}`}, zap.NewNop())
		require.NoError(t, err)
		_, err = svc.Generate(ctx, dto.GenerateProcedureDTO{EquipmentType: "Motor"})
		httpErr := requireHTTPCode(t, err, http.StatusInternalServerError)
		assert.Contains(t, httpErr.Message, "Error en formato JSON")
	})

	t.Run("not json", func(t *testing.T) {
		svc, err := NewProcedureService(&fakeCompleter{reply: "Lo siento, no puedo"}, zap.NewNop())
		require.NoError(t, err)
		_, err = svc.Generate(ctx, dto.GenerateProcedureDTO{EquipmentType: "Motor"})
		httpErr := requireHTTPCode(t, err, http.StatusInternalServerError)
		assert.Contains(t, httpErr.Message, "Respuesta: Lo siento, no puedo")
	})

	t.Run("provider not configured", func(t *testing.T) {
		svc, err := NewProcedureService(&fakeCompleter{err: fmt.Errorf("openai: %w", llm.ErrNotConfigured)}, zap.NewNop())
		require.NoError(t, err)
		_, err = svc.Generate(ctx, dto.GenerateProcedureDTO{EquipmentType: "Motor"})
		httpErr := requireHTTPCode(t, err, http.StatusInternalServerError)
		assert.Equal(t, llm.ErrNotConfigured.Error(), httpErr.Message)
	})

	t.Run("provider failure", func(t *testing.T) {
		svc, err := NewProcedureService(&fakeCompleter{err: errors.New("timeout")}, zap.NewNop())
		require.NoError(t, err)
		_, err = svc.Generate(ctx, dto.GenerateProcedureDTO{EquipmentType: "Motor"})
		httpErr := requireHTTPCode(t, err, http.StatusInternalServerError)
		assert.Equal(t, "Error generando el procedimiento: timeout", httpErr.Message)
	})
}
