package entities

import "time"

// Position is a job title ("cargo").
type Position struct {
	ID          uint64 `db:"id"`
	Description string `db:"descripcion"`
}

// Person is identified by a client-supplied document number.
type Person struct {
	ID         uint64  `db:"identificacion"`
	Name       string  `db:"nombres"`
	PositionID *uint64 `db:"cargo_id"`
}

type Activity struct {
	ID          uint64    `db:"id"`
	Description string    `db:"descripcion"`
	Date        time.Time `db:"fecha"`
	EquipmentID uint64    `db:"equipo_id"`
	PersonID    uint64    `db:"persona_id"`
}

// ActivityDetail is an activity joined with person, position and equipment names.
type ActivityDetail struct {
	ID            uint64
	Date          time.Time
	Description   string
	PersonName    string
	PositionName  *string
	EquipmentName string
}

type ActivityDetailFilter struct {
	From        *time.Time
	To          *time.Time
	PersonID    *uint64
	EquipmentID *uint64
}
