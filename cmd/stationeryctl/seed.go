package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stationery-api/internal/application/auth"
	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/application/seed"
	"github.com/jhoicas/stationery-api/internal/application/usecase"
	"github.com/jhoicas/stationery-api/internal/infrastructure/postgres"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga datos de demostración (retailers, catálogo y facturas del último mes)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePostgres("seed"); err != nil {
			return err
		}
		ctx := cmd.Context()
		l := log.WithComponent("seed")

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if seedReset {
			if err := postgres.ResetData(ctx, st.Pool); err != nil {
				return err
			}
			l.Warn().Msg("datos existentes eliminados")
		}

		seeder := seed.NewSeeder(
			auth.NewAuthUseCase(st.Admins, auth.JWTConfig{}),
			usecase.NewRetailerUseCase(st.Retailers),
			usecase.NewProductUseCase(st.Products),
			billing.NewLedgerUseCase(st.TxRunner, st.Invoices, st.Payments, nil),
		)
		sum, err := seeder.Run(ctx, time.Now())
		if err != nil {
			return err
		}
		l.Info().
			Int("retailers", sum.Retailers).
			Int("products", sum.Products).
			Int("invoices", sum.Invoices).
			Int("payments", sum.Payments).
			Msg("seed completo")
		fmt.Fprintf(cmd.OutOrStdout(), "Admin login: %s / %s\n", seed.AdminEmail, seed.AdminPassword)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "vacía retailers, productos, facturas y pagos antes de cargar")
}
