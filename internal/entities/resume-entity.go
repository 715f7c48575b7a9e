package entities

import "time"

// ResumeFragment is one embedded chunk of a résumé PDF.
type ResumeFragment struct {
	ID         uint64    `db:"id"`
	Collection string    `db:"coleccion"`
	File       string    `db:"archivo"`
	Ordinal    int       `db:"ordinal"`
	Content    string    `db:"contenido"`
	Embedding  []float32 `db:"embedding"`
	CreatedAt  time.Time `db:"created_at"`
}
