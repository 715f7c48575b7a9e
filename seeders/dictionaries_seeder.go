package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// insertMissing adds each value to table.column unless a row with that value already exists.
func insertMissing(ctx context.Context, tx pgx.Tx, table, column string, values []string) (int, error) {
	query := fmt.Sprintf(
		"INSERT INTO %[1]s (%[2]s) SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM %[1]s WHERE %[2]s = $1)",
		table, column)
	inserted := 0
	for _, v := range values {
		tag, err := tx.Exec(ctx, query, v)
		if err != nil {
			return inserted, fmt.Errorf("%s '%s': %w", table, v, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Tabla 'rol'...")
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		n, err := insertMissing(ctx, tx, "rol", "descripcion", rolesData)
		log.Printf("    %d roles nuevos", n)
		return err
	})
}

func seedApplications(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Tablas 'aplicacion' y 'aplicacionrol'...")
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		for _, a := range applicationsData {
			_, err := tx.Exec(ctx,
				`INSERT INTO aplicacion (nombre, descripcion) SELECT $1, $2
				 WHERE NOT EXISTS (SELECT 1 FROM aplicacion WHERE nombre = $1)`,
				a.Name, a.Description)
			if err != nil {
				return fmt.Errorf("aplicación '%s': %w", a.Name, err)
			}
		}

		for role, apps := range roleApplications {
			for _, app := range apps {
				_, err := tx.Exec(ctx,
					`INSERT INTO aplicacionrol (rol_id, aplicacion_id)
					 SELECT r.id, a.id FROM rol r, aplicacion a
					 WHERE r.descripcion = $1 AND a.nombre = $2
					 ON CONFLICT (rol_id, aplicacion_id) DO NOTHING`,
					role, app)
				if err != nil {
					return fmt.Errorf("aplicación '%s' para rol '%s': %w", app, role, err)
				}
			}
		}
		return nil
	})
}

func seedAssetTypes(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Tabla 'tipoactivo'...")
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		n, err := insertMissing(ctx, tx, "tipoactivo", "descripcion", assetTypesData)
		log.Printf("    %d tipos de activo nuevos", n)
		return err
	})
}

func seedPositions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Tabla 'cargo'...")
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		n, err := insertMissing(ctx, tx, "cargo", "descripcion", positionsData)
		log.Printf("    %d cargos nuevos", n)
		return err
	})
}
