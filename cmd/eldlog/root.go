package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "eldlog",
	Short: "eldlog - FMCSA daily log normalizer and sheet renderer",
	Long: `eldlog ingests trip-planning results of varying shape, normalizes them
into canonical FMCSA driver daily logs, and renders the four-lane 24-hour
log grid as SVG. It can run as an HTTP service or convert files one-shot.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
