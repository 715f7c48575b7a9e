package dto

import "github.com/aarondl/null/v8"

type CreatePlantDTO struct {
	Name         string  `json:"nombre" validate:"required,not_blank"`
	Description  *string `json:"descripcion"`
	Municipality string  `json:"municipio" validate:"required,not_blank"`
	Location     *string `json:"localizacion"`
	ContractID   uint64  `json:"contrato_id" validate:"required,gt=0"`
}

type UpdatePlantDTO struct {
	Name         *string     `json:"nombre" validate:"omitempty,not_blank"`
	Description  null.String `json:"descripcion"`
	Municipality *string     `json:"municipio" validate:"omitempty,not_blank"`
	Location     null.String `json:"localizacion"`
	ContractID   *uint64     `json:"contrato_id" validate:"omitempty,gt=0"`
}

type PlantDTO struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"nombre"`
	Description  *string `json:"descripcion"`
	Municipality string  `json:"municipio"`
	Location     *string `json:"localizacion"`
	ContractID   uint64  `json:"contrato_id"`
}

type CreateSystemDTO struct {
	Code        string  `json:"codigo" validate:"required,not_blank,max=20"`
	Name        string  `json:"nombre" validate:"required,not_blank"`
	Description *string `json:"descripcion"`
	PlantID     uint64  `json:"planta_id" validate:"required,gt=0"`
}

type UpdateSystemDTO struct {
	Code        *string     `json:"codigo" validate:"omitempty,not_blank,max=20"`
	Name        *string     `json:"nombre" validate:"omitempty,not_blank"`
	Description null.String `json:"descripcion"`
	PlantID     *uint64     `json:"planta_id" validate:"omitempty,gt=0"`
}

type SystemDTO struct {
	ID          uint64  `json:"id"`
	Code        string  `json:"codigo"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
	PlantID     uint64  `json:"planta_id"`
}

type CreateSubsystemDTO struct {
	Code        string  `json:"codigo" validate:"required,not_blank,max=20"`
	Name        string  `json:"nombre" validate:"required,not_blank"`
	Description *string `json:"descripcion"`
	SystemID    uint64  `json:"sistema_id" validate:"required,gt=0"`
}

type UpdateSubsystemDTO struct {
	Code        *string     `json:"codigo" validate:"omitempty,not_blank,max=20"`
	Name        *string     `json:"nombre" validate:"omitempty,not_blank"`
	Description null.String `json:"descripcion"`
	SystemID    *uint64     `json:"sistema_id" validate:"omitempty,gt=0"`
}

type SubsystemDTO struct {
	ID          uint64  `json:"id"`
	Code        string  `json:"codigo"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
	SystemID    uint64  `json:"sistema_id"`
}

// Hierarchy read model. Null descriptions are rendered as "".

type PlantHierarchyDTO struct {
	ID           uint64               `json:"id"`
	Name         string               `json:"nombre"`
	Municipality string               `json:"municipio"`
	Location     *string              `json:"localizacion"`
	Systems      []SystemHierarchyDTO `json:"sistemas"`
}

type SystemHierarchyDTO struct {
	ID          uint64                  `json:"id"`
	Code        string                  `json:"codigo"`
	Name        string                  `json:"nombre"`
	Description string                  `json:"descripcion"`
	Subsystems  []SubsystemHierarchyDTO `json:"subsistemas"`
}

type SubsystemHierarchyDTO struct {
	ID          uint64              `json:"id"`
	Code        string              `json:"codigo"`
	Name        string              `json:"nombre"`
	Description string              `json:"descripcion"`
	Equipment   []EquipmentShortDTO `json:"equipos"`
}

type EquipmentShortDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"nombre"`
}
