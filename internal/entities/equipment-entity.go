package entities

type AssetType struct {
	ID          uint64  `db:"id"`
	Description string  `db:"descripcion"`
	Image       *string `db:"imagen"`
}

type Manufacturer struct {
	ID   uint64 `db:"id"`
	Name string `db:"nombre"`
}

// EquipmentModel is a manufacturer's product line ("modelo").
type EquipmentModel struct {
	ID             uint64 `db:"id"`
	Name           string `db:"nombre"`
	ManufacturerID uint64 `db:"fabricante_id"`

	Manufacturer *Manufacturer `db:"-"`
}

type Equipment struct {
	ID             uint64  `db:"id"`
	Name           string  `db:"nombre"`
	Location       *string `db:"ubicacion"`
	Image          *string `db:"imagen"`
	SubsystemID    uint64  `db:"subsistema_id"`
	AssetTypeID    uint64  `db:"tipo_activo_id"`
	ManufacturerID *uint64 `db:"fabricante_id"`
	ModelID        *uint64 `db:"modelo_id"`

	// Joined, not columns
	Subsystem    *Subsystem      `db:"-"`
	AssetType    *AssetType      `db:"-"`
	Manufacturer *Manufacturer   `db:"-"`
	Model        *EquipmentModel `db:"-"`
}
