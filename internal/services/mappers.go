package services

import (
	"game-api/internal/dto"
	"game-api/internal/entities"
	"game-api/pkg/utils"
)

const dateLayout = "2006-01-02"

func assetTypeToDTO(e entities.AssetType) dto.AssetTypeDTO {
	return dto.AssetTypeDTO{ID: e.ID, Description: e.Description, Image: e.Image}
}

func manufacturerToDTO(e entities.Manufacturer) dto.ManufacturerDTO {
	return dto.ManufacturerDTO{ID: e.ID, Name: e.Name}
}

func modelToDTO(e entities.EquipmentModel) dto.ModelDTO {
	return dto.ModelDTO{ID: e.ID, Name: e.Name, ManufacturerID: e.ManufacturerID}
}

func modelToDetailDTO(e entities.EquipmentModel) dto.ModelDetailDTO {
	out := dto.ModelDetailDTO{ID: e.ID, Name: e.Name, ManufacturerID: e.ManufacturerID}
	if e.Manufacturer != nil {
		m := manufacturerToDTO(*e.Manufacturer)
		out.Manufacturer = &m
	}
	return out
}

func equipmentToDetailDTO(e entities.Equipment) dto.EquipmentDetailDTO {
	out := dto.EquipmentDetailDTO{
		ID:             e.ID,
		Name:           e.Name,
		Location:       e.Location,
		Image:          e.Image,
		SubsystemID:    e.SubsystemID,
		AssetTypeID:    e.AssetTypeID,
		ManufacturerID: e.ManufacturerID,
		ModelID:        e.ModelID,
	}
	if e.Subsystem != nil {
		s := subsystemToDTO(*e.Subsystem)
		out.Subsystem = &s
	}
	if e.AssetType != nil {
		t := assetTypeToDTO(*e.AssetType)
		out.AssetType = &t
	}
	if e.Manufacturer != nil {
		m := manufacturerToDTO(*e.Manufacturer)
		out.Manufacturer = &m
	}
	if e.Model != nil {
		m := modelToDTO(*e.Model)
		out.Model = &m
	}
	return out
}

func plantToDTO(e entities.Plant) dto.PlantDTO {
	return dto.PlantDTO{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Municipality: e.Municipality,
		Location:     e.Location,
		ContractID:   e.ContractID,
	}
}

func systemToDTO(e entities.System) dto.SystemDTO {
	return dto.SystemDTO{ID: e.ID, Code: e.Code, Name: e.Name, Description: e.Description, PlantID: e.PlantID}
}

func subsystemToDTO(e entities.Subsystem) dto.SubsystemDTO {
	return dto.SubsystemDTO{ID: e.ID, Code: e.Code, Name: e.Name, Description: e.Description, SystemID: e.SystemID}
}

func clientToDTO(e entities.Client) dto.ClientDTO {
	return dto.ClientDTO{ID: e.ID, Name: e.Name, Description: e.Description}
}

func contractToDTO(e entities.Contract) dto.ContractDTO {
	return dto.ContractDTO{ID: e.ID, Name: e.Name, Description: e.Description, ClientID: e.ClientID}
}

func roleToDTO(e entities.Role) dto.RoleDTO {
	return dto.RoleDTO{ID: e.ID, Description: e.Description}
}

func applicationToDTO(e entities.Application) dto.ApplicationDTO {
	return dto.ApplicationDTO{ID: e.ID, Name: e.Name, Description: e.Description}
}

func userToDTO(e entities.User) dto.UserDTO {
	return dto.UserDTO{ID: e.ID, Username: e.Username, Email: e.Email, RoleID: e.RoleID}
}

func positionToDTO(e entities.Position) dto.PositionDTO {
	return dto.PositionDTO{ID: e.ID, Description: e.Description}
}

func personToDTO(e entities.Person) dto.PersonDTO {
	return dto.PersonDTO{ID: e.ID, Name: e.Name, PositionID: e.PositionID}
}

func activityToDTO(e entities.Activity) dto.ActivityDTO {
	return dto.ActivityDTO{
		ID:          e.ID,
		Description: e.Description,
		Date:        e.Date.Format(dateLayout),
		EquipmentID: e.EquipmentID,
		PersonID:    e.PersonID,
	}
}

func activityDetailToDTO(e entities.ActivityDetail) dto.ActivityDetailDTO {
	return dto.ActivityDetailDTO{
		ID:          e.ID,
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
		Person:      e.PersonName,
		Position:    e.PositionName,
		Equipment:   e.EquipmentName,
	}
}

func systemToHierarchy(e entities.System) dto.SystemHierarchyDTO {
	return dto.SystemHierarchyDTO{
		ID:          e.ID,
		Code:        e.Code,
		Name:        e.Name,
		Description: utils.SafeDeref(e.Description),
		Subsystems:  []dto.SubsystemHierarchyDTO{},
	}
}

func subsystemToHierarchy(e entities.Subsystem) dto.SubsystemHierarchyDTO {
	return dto.SubsystemHierarchyDTO{
		ID:          e.ID,
		Code:        e.Code,
		Name:        e.Name,
		Description: utils.SafeDeref(e.Description),
		Equipment:   []dto.EquipmentShortDTO{},
	}
}
