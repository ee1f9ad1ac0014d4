package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	flagAPIURL   string
	flagOutput   string
	flagLogLevel string
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "vendalink",
	Short: "Terminal front-end for the Vendalink sales CRM",
	Long: `vendalink is a terminal front-end for the Vendalink sales CRM.
It renders lists and forms for customers, leads, deals, interactions, and
users, talking to the remote CRM API for persistence.

Most commands require a logged-in session; run 'vendalink auth login' first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "CRM API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: table, json, yaml (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}
