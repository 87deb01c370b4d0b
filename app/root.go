// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
)

var (
	configPath string // directory holding main.toml

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "portfolio-admin",
		Short: "Portfolio website with an admin panel for its content",
		Long: `portfolio-admin serves a personal portfolio (projects, insights,
services and hero images) and the admin panels to manage it.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "directory of main.toml (default ./etc/)")
}

// loadConfig reads the configuration for commands that need it.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	cfg, err = config.ReadConfig(configPath)

	return err
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
