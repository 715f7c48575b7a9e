package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries fills the reference tables that have no dependencies.
func SeedDictionaries(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("▶️  Cargando catálogos base...")
	if err := seedAssetTypes(ctx, db); err != nil {
		return fmt.Errorf("tipos de activo: %w", err)
	}
	if err := seedPositions(ctx, db); err != nil {
		return fmt.Errorf("cargos: %w", err)
	}
	log.Println("✅ Catálogos base cargados")
	return nil
}

// SeedAccess creates the roles, their applications and the administrator account.
func SeedAccess(ctx context.Context, db *pgxpool.Pool, admin AdminUser) error {
	log.Println("▶️  Configurando roles y administrador...")
	if err := seedRoles(ctx, db); err != nil {
		return fmt.Errorf("roles: %w", err)
	}
	if err := seedApplications(ctx, db); err != nil {
		return fmt.Errorf("aplicaciones: %w", err)
	}
	if err := seedAdminUser(ctx, db, admin); err != nil {
		return fmt.Errorf("administrador: %w", err)
	}
	log.Println("✅ Roles y administrador configurados")
	return nil
}
