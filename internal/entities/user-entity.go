package entities

type Role struct {
	ID          uint64 `db:"id"`
	Description string `db:"descripcion"`
}

type Application struct {
	ID          uint64  `db:"id"`
	Name        string  `db:"nombre"`
	Description *string `db:"descripcion"`
}

type RoleApplication struct {
	ID            uint64 `db:"id"`
	RoleID        uint64 `db:"rol_id"`
	ApplicationID uint64 `db:"aplicacion_id"`
}

type User struct {
	ID       uint64  `db:"id"`
	Username string  `db:"username"`
	Password string  `db:"password"` // bcrypt hash
	Email    *string `db:"email"`
	RoleID   uint64  `db:"rol_id"`
}
