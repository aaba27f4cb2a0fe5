package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stationery-api/internal/infrastructure/storage"
	"github.com/jhoicas/stationery-api/pkg/config"
	"github.com/jhoicas/stationery-api/pkg/logger"
)

var version = "1.0.0"

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:     "stationeryctl",
	Short:   "Operación del back-office de la papelería",
	Long:    `stationeryctl aplica migraciones, gestiona administradores y carga datos de demostración usando la misma configuración que la API (variables de entorno o .env).`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		cfg = c
		log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "stationeryctl"})
		return nil
	},
	SilenceUsage: true,
}

// Execute corre el comando raíz; cualquier error termina con código 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.WithComponent("cmd").Error().Err(err).Msg("Command execution failed")
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd, createAdminCmd, seedCmd)
}

// openStorage abre el driver configurado sin auto-migrar: las migraciones son explícitas.
func openStorage(ctx context.Context) (*storage.Storage, error) {
	c := *cfg
	c.DB.AutoMigrate = false
	return storage.Open(ctx, &c, log.WithComponent("storage"))
}

// requirePostgres rechaza comandos que no tienen sentido sobre el store en memoria.
func requirePostgres(name string) error {
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return fmt.Errorf("%s requiere STORAGE_DRIVER=postgres (actual: %q)", name, cfg.Storage.Driver)
	}
	return nil
}
