package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navportal/navportal/internal/config"
)

const flagJSON = "json"

func init() { //nolint: gochecknoinits
	configCmd.Flags().Bool(flagJSON, false, "Print json instead of toml")
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration, defaults and overrides applied",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool(flagJSON)

		dump := config.DumpConfig
		if asJSON {
			dump = config.DumpConfigJSON
		}

		out, err := dump(cfg)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), out)

		return nil
	},
}
