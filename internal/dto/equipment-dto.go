package dto

import "github.com/aarondl/null/v8"

// Asset types

type CreateAssetTypeDTO struct {
	Description string  `json:"descripcion" validate:"required,not_blank"`
	Image       *string `json:"imagen" validate:"omitempty"`
}

type UpdateAssetTypeDTO struct {
	Description *string     `json:"descripcion" validate:"omitempty,not_blank"`
	Image       null.String `json:"imagen"`
}

type AssetTypeDTO struct {
	ID          uint64  `json:"id"`
	Description string  `json:"descripcion"`
	Image       *string `json:"imagen"`
}

// Manufacturers

type CreateManufacturerDTO struct {
	Name string `json:"nombre" validate:"required,not_blank,max=100"`
}

type UpdateManufacturerDTO struct {
	Name *string `json:"nombre" validate:"omitempty,not_blank,max=100"`
}

type ManufacturerDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"nombre"`
}

type ManufacturerWithModelsDTO struct {
	ID     uint64     `json:"id"`
	Name   string     `json:"nombre"`
	Models []ModelDTO `json:"modelos"`
}

// Models

type CreateModelDTO struct {
	Name           string `json:"nombre" validate:"required,not_blank,max=100"`
	ManufacturerID uint64 `json:"fabricante_id" validate:"required,gt=0"`
}

type UpdateModelDTO struct {
	Name           *string `json:"nombre" validate:"omitempty,not_blank,max=100"`
	ManufacturerID *uint64 `json:"fabricante_id" validate:"omitempty,gt=0"`
}

type ModelDTO struct {
	ID             uint64 `json:"id"`
	Name           string `json:"nombre"`
	ManufacturerID uint64 `json:"fabricante_id"`
}

type ModelDetailDTO struct {
	ID             uint64           `json:"id"`
	Name           string           `json:"nombre"`
	ManufacturerID uint64           `json:"fabricante_id"`
	Manufacturer   *ManufacturerDTO `json:"fabricante"`
}

// Equipment

type CreateEquipmentDTO struct {
	Name           string  `json:"nombre" validate:"required,not_blank"`
	Location       *string `json:"ubicacion" validate:"omitempty"`
	Image          *string `json:"imagen" validate:"omitempty,max=20"`
	SubsystemID    uint64  `json:"subsistema_id" validate:"required,gt=0"`
	AssetTypeID    uint64  `json:"tipo_activo_id" validate:"required,gt=0"`
	ManufacturerID *uint64 `json:"fabricante_id" validate:"omitempty,gt=0"`
	ModelID        *uint64 `json:"modelo_id" validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	Name           *string     `json:"nombre" validate:"omitempty,not_blank"`
	Location       null.String `json:"ubicacion"`
	Image          null.String `json:"imagen" validate:"omitempty,max=20"`
	SubsystemID    *uint64     `json:"subsistema_id" validate:"omitempty,gt=0"`
	AssetTypeID    *uint64     `json:"tipo_activo_id" validate:"omitempty,gt=0"`
	ManufacturerID null.Int64  `json:"fabricante_id"`
	ModelID        null.Int64  `json:"modelo_id"`
}

// EquipmentDetailDTO is the equipment with its relations loaded by join.
type EquipmentDetailDTO struct {
	ID             uint64           `json:"id"`
	Name           string           `json:"nombre"`
	Location       *string          `json:"ubicacion"`
	Image          *string          `json:"imagen"`
	SubsystemID    uint64           `json:"subsistema_id"`
	AssetTypeID    uint64           `json:"tipo_activo_id"`
	ManufacturerID *uint64          `json:"fabricante_id"`
	ModelID        *uint64          `json:"modelo_id"`
	Subsystem      *SubsystemDTO    `json:"subsistema"`
	AssetType      *AssetTypeDTO    `json:"tipo_activo"`
	Manufacturer   *ManufacturerDTO `json:"fabricante"`
	Model          *ModelDTO        `json:"modelo"`
}

type EquipmentFilterDTO struct {
	SubsystemID    *uint64 `query:"subsistema_id"`
	ManufacturerID *uint64 `query:"fabricante_id"`
	ModelID        *uint64 `query:"modelo_id"`
}
