package dto

import "github.com/aarondl/null/v8"

type CreateClientDTO struct {
	Name        string  `json:"nombre" validate:"required,not_blank"`
	Description *string `json:"descripcion"`
}

type UpdateClientDTO struct {
	Name        *string     `json:"nombre" validate:"omitempty,not_blank"`
	Description null.String `json:"descripcion"`
}

type ClientDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

type ClientWithContractsDTO struct {
	ID          uint64        `json:"id"`
	Name        string        `json:"nombre"`
	Description *string       `json:"descripcion"`
	Contracts   []ContractDTO `json:"contratos"`
}

type CreateContractDTO struct {
	Name        string  `json:"nombre" validate:"required,not_blank"`
	Description *string `json:"descripcion"`
	ClientID    *uint64 `json:"cliente_id" validate:"omitempty,gt=0"`
}

type UpdateContractDTO struct {
	Name        *string     `json:"nombre" validate:"omitempty,not_blank"`
	Description null.String `json:"descripcion"`
	ClientID    null.Int64  `json:"cliente_id"`
}

type ContractDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
	ClientID    *uint64 `json:"cliente_id"`
}

type ContractWithPlantsDTO struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"nombre"`
	Description *string    `json:"descripcion"`
	ClientID    *uint64    `json:"cliente_id"`
	Plants      []PlantDTO `json:"plantas"`
}

type ContractUserDTO struct {
	UserID     uint64 `json:"usuario_id"`
	ContractID uint64 `json:"contrato_id"`
}
