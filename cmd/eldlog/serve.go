package main

import (
	"fmt"

	"github.com/spf13/cobra"

	eldlog "github.com/princesinghrajput/eld-logsheet"
	"github.com/princesinghrajput/eld-logsheet/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the log sheet HTTP service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := eldlog.InitLogging(cfg.Logging.Level)
	logger.Info().
		Str("version", version).
		Str("config", configPath).
		Msg("starting eldlog")

	srv, err := eldlog.NewServer(cfg, logger)
	if err != nil {
		return err
	}
	return srv.Start()
}
