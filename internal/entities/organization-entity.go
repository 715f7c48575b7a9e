package entities

type Plant struct {
	ID           uint64  `db:"id"`
	Name         string  `db:"nombre"`
	Description  *string `db:"descripcion"`
	Municipality string  `db:"municipio"`
	Location     *string `db:"localizacion"` // GPS
	ContractID   uint64  `db:"contrato_id"`
}

type System struct {
	ID          uint64  `db:"id"`
	Code        string  `db:"codigo"`
	Name        string  `db:"nombre"`
	Description *string `db:"descripcion"`
	PlantID     uint64  `db:"planta_id"`
}

type Subsystem struct {
	ID          uint64  `db:"id"`
	Code        string  `db:"codigo"`
	Name        string  `db:"nombre"`
	Description *string `db:"descripcion"`
	SystemID    uint64  `db:"sistema_id"`
}
