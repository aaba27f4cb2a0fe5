package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stationery-api/internal/infrastructure/postgres"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migraciones del schema PostgreSQL",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return requirePostgres("migrate")
	},
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica las migraciones pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := log.WithComponent("migrate")
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := postgres.MigrateUp(cmd.Context(), st.Pool, cfg.DB.Schema); err != nil {
			return err
		}
		l.Info().Str("schema", cfg.DB.Schema).Msg("migraciones aplicadas")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revierte migraciones (todas si --steps es 0)",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := log.WithComponent("migrate")
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if err := postgres.MigrateDown(st.Pool, cfg.DB.Schema, migrateSteps); err != nil {
			return err
		}
		l.Info().Int("steps", migrateSteps).Msg("migraciones revertidas")
		return nil
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión aplicada",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		v, dirty, err := postgres.MigrationVersion(st.Pool, cfg.DB.Schema)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", v, dirty)
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 0, "cantidad de migraciones a revertir")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}
