package dto

import "github.com/aarondl/null/v8"

type CreateRoleDTO struct {
	Description string `json:"descripcion" validate:"required,not_blank"`
}

type UpdateRoleDTO struct {
	Description *string `json:"descripcion" validate:"omitempty,not_blank"`
}

type RoleDTO struct {
	ID          uint64 `json:"id"`
	Description string `json:"descripcion"`
}

type RoleWithApplicationsDTO struct {
	ID           uint64           `json:"id"`
	Description  string           `json:"descripcion"`
	Applications []ApplicationDTO `json:"aplicaciones"`
}

type CreateApplicationDTO struct {
	Name        string  `json:"nombre" validate:"required,not_blank"`
	Description *string `json:"descripcion"`
}

type UpdateApplicationDTO struct {
	Name        *string     `json:"nombre" validate:"omitempty,not_blank"`
	Description null.String `json:"descripcion"`
}

type ApplicationDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

type RoleApplicationDTO struct {
	ID            uint64 `json:"id"`
	RoleID        uint64 `json:"rol_id"`
	ApplicationID uint64 `json:"aplicacion_id"`
}

type CreateUserDTO struct {
	Username string  `json:"username" validate:"required,not_blank"`
	Password string  `json:"password" validate:"required,min=6"`
	Email    *string `json:"email" validate:"omitempty,email"`
	RoleID   uint64  `json:"rol_id" validate:"required,gt=0"`
}

type UpdateUserDTO struct {
	Username *string     `json:"username" validate:"omitempty,not_blank"`
	Password *string     `json:"password" validate:"omitempty,min=6"`
	Email    null.String `json:"email" validate:"omitempty,email"`
	RoleID   *uint64     `json:"rol_id" validate:"omitempty,gt=0"`
}

// UserDTO never carries the password hash.
type UserDTO struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	RoleID   uint64  `json:"rol_id"`
}
