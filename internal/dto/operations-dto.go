package dto

import "github.com/aarondl/null/v8"

type CreatePositionDTO struct {
	Description string `json:"descripcion" validate:"required,not_blank,max=50"`
}

type UpdatePositionDTO struct {
	Description *string `json:"descripcion" validate:"omitempty,not_blank,max=50"`
}

type PositionDTO struct {
	ID          uint64 `json:"id"`
	Description string `json:"descripcion"`
}

type CreatePersonDTO struct {
	ID         uint64  `json:"identificacion" validate:"required,gt=0"`
	Name       string  `json:"nombres" validate:"required,not_blank,max=100"`
	PositionID *uint64 `json:"cargo_id"`
}

type UpdatePersonDTO struct {
	Name       *string    `json:"nombres" validate:"omitempty,not_blank,max=100"`
	PositionID null.Int64 `json:"cargo_id"`
}

type PersonDTO struct {
	ID         uint64  `json:"identificacion"`
	Name       string  `json:"nombres"`
	PositionID *uint64 `json:"cargo_id"`
}

type CreateActivityDTO struct {
	Description string `json:"descripcion" validate:"required,not_blank,max=40"`
	Date        string `json:"fecha" validate:"required,date_iso"`
	EquipmentID uint64 `json:"equipo_id" validate:"required,gt=0"`
	PersonID    uint64 `json:"persona_id" validate:"required,gt=0"`
}

type UpdateActivityDTO struct {
	Description *string `json:"descripcion" validate:"omitempty,not_blank,max=40"`
	Date        *string `json:"fecha" validate:"omitempty,date_iso"`
	EquipmentID *uint64 `json:"equipo_id" validate:"omitempty,gt=0"`
	PersonID    *uint64 `json:"persona_id" validate:"omitempty,gt=0"`
}

type ActivityDTO struct {
	ID          uint64 `json:"id"`
	Description string `json:"descripcion"`
	Date        string `json:"fecha"`
	EquipmentID uint64 `json:"equipo_id"`
	PersonID    uint64 `json:"persona_id"`
}

type ActivityDetailDTO struct {
	ID          uint64  `json:"id"`
	Date        string  `json:"fecha"`
	Description string  `json:"descripcion"`
	Person      string  `json:"persona"`
	Position    *string `json:"cargo"`
	Equipment   string  `json:"equipo"`
}

type ActivityDetailFilterDTO struct {
	From        string  `query:"desde" validate:"omitempty,date_iso"`
	To          string  `query:"hasta" validate:"omitempty,date_iso"`
	PersonID    *uint64 `query:"persona_id"`
	EquipmentID *uint64 `query:"equipo_id"`
}

type ResumeExistsDTO struct {
	Exists bool `json:"exists"`
}

type BulkUploadResultDTO struct {
	Message     string   `json:"message"`
	Inserted    int      `json:"registros_insertados"`
	Skipped     int      `json:"registros_omitidos"`
	ColumnsUsed []string `json:"columnas_usadas"`
}
