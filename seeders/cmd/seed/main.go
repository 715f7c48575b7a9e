package main

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"game-api/pkg/config"
	"game-api/pkg/database/postgresql"
	"game-api/seeders"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gamectl",
		Short:         "Migraciones y datos iniciales de GAME API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o revierte las migraciones del esquema",
	}
	for _, sub := range []struct{ use, short string }{
		{"up", "Aplica todas las migraciones pendientes"},
		{"down", "Revierte la última migración"},
		{"status", "Muestra el estado de las migraciones"},
		{"reset", "Revierte todas las migraciones"},
	} {
		command := sub.use
		migrate.AddCommand(&cobra.Command{
			Use:   command,
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withPool(cmd.Context(), func(ctx context.Context, db *pgxpool.Pool) error {
					return postgresql.Migrate(ctx, db, command)
				})
			},
		})
	}
	return migrate
}

func newSeedCmd() *cobra.Command {
	var (
		onlyDictionaries bool
		onlyAccess       bool
		admin            seeders.AdminUser
	)
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Carga roles, aplicaciones, usuario administrador, tipos de activo y cargos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, db *pgxpool.Pool) error {
				if !onlyAccess {
					if err := seeders.SeedDictionaries(ctx, db); err != nil {
						return err
					}
				}
				if !onlyDictionaries {
					if err := seeders.SeedAccess(ctx, db, admin); err != nil {
						return err
					}
				}
				log.Println("✅ Datos iniciales cargados")
				return nil
			})
		},
	}
	seed.Flags().BoolVar(&onlyDictionaries, "dictionaries", false, "solo tipos de activo y cargos")
	seed.Flags().BoolVar(&onlyAccess, "access", false, "solo roles, aplicaciones y administrador")
	seed.Flags().StringVar(&admin.Username, "admin-user", envOr("SEED_ADMIN_USERNAME", "admin"), "usuario administrador")
	seed.Flags().StringVar(&admin.Password, "admin-password", envOr("SEED_ADMIN_PASSWORD", "admin123"), "contraseña del administrador")
	seed.Flags().StringVar(&admin.Email, "admin-email", os.Getenv("SEED_ADMIN_EMAIL"), "correo del administrador")
	seed.MarkFlagsMutuallyExclusive("dictionaries", "access")
	return seed
}

func withPool(ctx context.Context, fn func(ctx context.Context, db *pgxpool.Pool) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.New()
	db, err := postgresql.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(ctx, db)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
