package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GasserElSawaf/UniCloudTest/engine/infra/server"
	"github.com/GasserElSawaf/UniCloudTest/pkg/config"
	"github.com/GasserElSawaf/UniCloudTest/pkg/logger"
)

// RootCmd builds the unicloud command tree.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "unicloud",
		Short:        "University registration assistant",
		Long:         "Conversational assistant that collects student registrations field by field and answers university questions.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	cmd.AddCommand(serveCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dialogue HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := setupLogging(cmd, cfg); err != nil {
				return err
			}
			srv, err := server.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
}

func setupLogging(cmd *cobra.Command, cfg *config.Config) error {
	level := cfg.Log.Level
	if flagLevel, err := cmd.Flags().GetString("log-level"); err == nil && flagLevel != "" {
		level = flagLevel
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return fmt.Errorf("failed to read log-json flag: %w", err)
	}
	logger.Init(&logger.Config{
		Level:      logger.LogLevel(level),
		JSON:       logJSON || cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	return nil
}
