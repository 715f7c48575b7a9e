package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"game-api/internal/dto"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/llm"
)

const defaultBrand = "Genérico"

const procedurePrompt = `Eres un experto en mantenimiento industrial especializado en %[1]s. Genera un procedimiento detallado de mantenimiento preventivo para el siguiente equipo:

Tipo de Equipo: %[1]s
Marca: %[2]s
Modelo: %[3]s

El procedimiento debe incluir:
1. Pasos detallados con sus títulos y descripciones
2. Precauciones de seguridad específicas para este tipo de equipo
3. Herramientas necesarias para realizar el mantenimiento

Asegúrate de que el procedimiento sea técnicamente correcto, siga las mejores prácticas de la industria y sea específico para este tipo de equipo.
Devuelve la respuesta en formato JSON con la siguiente estructura:

` + "```json" + `
{
    "pasos": [
        {
            "titulo": "Título del paso",
            "descripcion": "Descripción detallada",
            "notas": "Notas adicionales (opcional)"
        }
    ],
    "precauciones": "Texto con precauciones de seguridad",
    "herramientas": "Lista de herramientas necesarias"
}
` + "```" + `

Solo devuelve el JSON, sin texto adicional.`

const procedureSchema = `{
  "type": "object",
  "required": ["pasos", "precauciones", "herramientas"],
  "properties": {
    "pasos": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["titulo", "descripcion"],
        "properties": {
          "titulo": {"type": "string"},
          "descripcion": {"type": "string"},
          "notas": {"type": ["string", "null"]}
        }
      }
    },
    "precauciones": {"type": "string"},
    "herramientas": {"type": "string"}
  }
}`

type ProcedureServiceInterface interface {
	Generate(ctx context.Context, payload dto.GenerateProcedureDTO) (*dto.ProcedureDTO, error)
}

type ProcedureService struct {
	completer llm.Completer
	schema    *gojsonschema.Schema
	logger    *zap.Logger
}

func NewProcedureService(completer llm.Completer, logger *zap.Logger) (ProcedureServiceInterface, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(procedureSchema))
	if err != nil {
		return nil, fmt.Errorf("esquema de procedimiento no válido: %w", err)
	}
	return &ProcedureService{completer: completer, schema: schema, logger: logger}, nil
}

func (s *ProcedureService) Generate(ctx context.Context, payload dto.GenerateProcedureDTO) (*dto.ProcedureDTO, error) {
	brand, model := payload.Brand, payload.Model
	if strings.TrimSpace(brand) == "" {
		brand = defaultBrand
	}
	if strings.TrimSpace(model) == "" {
		model = defaultBrand
	}

	raw, err := s.completer.Complete(ctx, "", fmt.Sprintf(procedurePrompt, payload.EquipmentType, brand, model))
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return nil, apperrors.NewInternalError(llm.ErrNotConfigured.Error(), err)
		}
		s.logger.Error("error al generar el procedimiento", zap.String("proveedor", s.completer.Name()), zap.Error(err))
		return nil, apperrors.NewInternalError("Error generando el procedimiento: "+err.Error(), err)
	}

	return s.parse(raw)
}

// parse strips markdown fences, decodes the document and checks it against the schema.
func (s *ProcedureService) parse(raw string) (*dto.ProcedureDTO, error) {
	clean := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "```json", ""), "```", ""))

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(clean))
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("Error en formato JSON: %v. Respuesta: %s", err, clean), err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		detail := strings.Join(msgs, "; ")
		return nil, apperrors.NewInternalError(fmt.Sprintf("Error en formato JSON: %s. Respuesta: %s", detail, clean),
			errors.New(detail))
	}

	var procedure dto.ProcedureDTO
	if err := json.Unmarshal([]byte(clean), &procedure); err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("Error en formato JSON: %v. Respuesta: %s", err, clean), err)
	}
	return &procedure, nil
}
