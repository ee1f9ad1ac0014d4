package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vendalink/vendalink/internal/config"
)

// configRows renders the effective configuration as key/value pairs.
type configRows struct {
	cfg *config.Config
}

func (r configRows) TableHeader() []string {
	return []string{"Setting", "Value"}
}

func (r configRows) TableRows() [][]string {
	return [][]string{
		{"api_url", r.cfg.APIURL},
		{"timeout", r.cfg.Timeout.String()},
		{"output", r.cfg.Output},
		{"log_level", r.cfg.LogLevel},
		{"config dir", config.Dir()},
		{"credentials", config.CredentialsPath()},
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect CLI configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		f, err := a.formatter()
		if err != nil {
			return err
		}
		if a.cfg.Output == "table" {
			return f.Format(configRows{cfg: a.cfg})
		}
		return f.Format(a.cfg)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
