// Package app implements the main application commands.
package app

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/navportal/navportal/internal/config"
	"github.com/navportal/navportal/internal/logger"
)

const (
	envPrefix = "NAVPORTAL"

	keyConfig = "config"
	keyDev    = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "navportal",
	Short: "NavPortal is the company link directory",
	Long: `NavPortal serves the company link directory: groups, subgroups and links
behind email verified accounts, managed by a single admin.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String(keyConfig, "./etc/", "Directory holding main.toml")
	rootCmd.PersistentFlags().Bool(keyDev, false, "Enable dev mode")

	// flags win over NAVPORTAL_CONFIG and NAVPORTAL_DEV
	_ = viper.BindPFlag(keyConfig, rootCmd.PersistentFlags().Lookup(keyConfig))
	_ = viper.BindPFlag(keyDev, rootCmd.PersistentFlags().Lookup(keyDev))

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initializes the logger.
func loadConfig() (*config.Config, error) {
	path := viper.GetString(keyConfig)
	if path != "" && !strings.HasSuffix(path, "/") {
		path += "/"
	}

	cfg, err := config.ReadConfig(path)
	if err != nil {
		return nil, err
	}

	if viper.GetBool(keyDev) {
		cfg.DevMode = true
	}

	if err = logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "failed to init logger")
	}

	return &cfg, nil
}
