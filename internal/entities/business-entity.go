package entities

type Client struct {
	ID          uint64  `db:"id"`
	Name        string  `db:"nombre"`
	Description *string `db:"descripcion"`
}

type Contract struct {
	ID          uint64  `db:"id"`
	Name        string  `db:"nombre"`
	Description *string `db:"descripcion"`
	ClientID    *uint64 `db:"cliente_id"`
}

type ContractUser struct {
	UserID     uint64 `db:"usuario_id"`
	ContractID uint64 `db:"contrato_id"`
}
