package main

import (
	"comepouco/internal/config"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "comepouco",
		Short: "Affiliate link and user management API",
		Long: `comepouco serves the REST API behind the affiliate link dashboard.

Available subcommands:
  serve         - Start the HTTP server (default)
  migrate       - Create or update the database schema and exit
  create-admin  - Create an administrator account

Examples:
  comepouco                                              # Start the server
  comepouco migrate                                      # Migrate the configured database
  comepouco create-admin --email a@b.com --password s3cret1`,
		SilenceUsage: true,
		RunE:         serveCommand,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newCreateAdminCommand())
	return rootCmd
}

// loadConfig 读取配置并初始化日志
func loadConfig() (config.Config, error) {
	cfg, err := config.ParseConfig()
	if err != nil {
		return config.Config{}, err
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("log_level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	return cfg, nil
}
