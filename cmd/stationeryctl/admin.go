package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stationery-api/internal/application/auth"
)

var adminFlags struct {
	email    string
	password string
	name     string
	reset    bool
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Registra un administrador (o cambia su contraseña con --reset)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePostgres("create-admin"); err != nil {
			return err
		}
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		uc := auth.NewAuthUseCase(st.Admins, auth.JWTConfig{})
		admin, err := uc.CreateAdmin(cmd.Context(), adminFlags.email, adminFlags.password, adminFlags.name, adminFlags.reset)
		if err != nil {
			return err
		}
		log.WithComponent("admin").Info().Str("email", admin.Email).Bool("reset", adminFlags.reset).Msg("administrador listo")
		fmt.Fprintf(cmd.OutOrStdout(), "admin: %s (%s)\n", admin.Email, admin.Name)
		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminFlags.email, "email", "", "email del administrador")
	f.StringVar(&adminFlags.password, "password", "", "contraseña (mínimo 8 caracteres)")
	f.StringVar(&adminFlags.name, "name", "", "nombre visible (por defecto el email)")
	f.BoolVar(&adminFlags.reset, "reset", false, "si el email existe, solo actualiza la contraseña")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}
