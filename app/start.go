package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/navportal/navportal/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the NavPortal web service",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		d, err := daemon.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		defer func() {
			if errClose := d.Close(); errClose != nil {
				log.Error().Err(errClose).Msg("failed to close daemon")
			}
		}()

		go d.WaitShutdown()

		log.Info().Int("port", cfg.Webserver.Port).Bool("dev", cfg.DevMode).Msg("starting web service")

		return d.Start()
	},
}
