package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"game-api/pkg/utils"
)

// AdminUser holds the credentials of the seeded administrator.
type AdminUser struct {
	Username string
	Password string
	Email    string
}

func seedAdminUser(ctx context.Context, db *pgxpool.Pool, admin AdminUser) error {
	log.Printf("  - Usuario administrador '%s'...", admin.Username)

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM usuario WHERE username = $1", admin.Username).Scan(&userID)
	if err == nil {
		log.Println("    ya existe, se omite")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error al buscar el usuario administrador: %w", err)
	}

	var roleID uint64
	if err := db.QueryRow(ctx, "SELECT id FROM rol WHERE descripcion = $1 LIMIT 1", rolesData[0]).Scan(&roleID); err != nil {
		return fmt.Errorf("no se encontró el rol '%s': %w", rolesData[0], err)
	}

	hash, err := utils.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	var email interface{}
	if admin.Email != "" {
		email = admin.Email
	}
	if _, err := db.Exec(ctx,
		"INSERT INTO usuario (username, password, email, rol_id) VALUES ($1, $2, $3, $4)",
		admin.Username, hash, email, roleID); err != nil {
		return fmt.Errorf("no se pudo crear el usuario administrador: %w", err)
	}
	log.Println("    creado")
	return nil
}
