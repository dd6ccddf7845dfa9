package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/navportal/navportal/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rotateSecretCmd)
}

var (
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema, seed it and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if err = daemon.Migrate(cmd.Context(), cfg); err != nil {
				return err
			}

			log.Info().Str("engine", cfg.DB.GormEngine).Msg("database migrated")

			return nil
		},
	}

	rotateSecretCmd = &cobra.Command{
		Use:   "rotate-secret",
		Short: "Replace the generated token secret, signing out every user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if err = daemon.RotateSecret(cmd.Context(), cfg); err != nil {
				return err
			}

			log.Info().Msg("token secret rotated")

			return nil
		},
	}
)
