package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fentz26/taskmemo/internal/config"
	"github.com/fentz26/taskmemo/internal/logging"
	"github.com/fentz26/taskmemo/internal/menu"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskmemo",
	Short: "taskmemo - personal task list with undo/redo",
	Long:  `taskmemo keeps a personal task list in memory. Add, remove and list tasks, and step back and forth through every change with undo and redo.`,
	PersistentPreRunE: loadSettings,
	RunE:              runMenu,
	SilenceUsage:      true,
}

var (
	configPath string
	username   string
	auditDB    string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *log.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.yaml or .toml, default ~/.taskmemo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&username, "user", "", "Name shown in task listings")
	rootCmd.PersistentFlags().StringVar(&auditDB, "audit-db", "", "SQLite audit journal path (empty disables auditing)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, logfmt, json")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings resolves config from file, environment and flags, flags winning.
func loadSettings(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("user") {
		c.Username = username
	}
	if flags.Changed("audit-db") {
		c.AuditDB = auditDB
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		c.LogFormat = logFormat
	}

	cfg = c
	logger = logging.NewFromConfig(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	logger.Debug("config loaded", "user", cfg.Username, "audit", cfg.AuditEnabled())
	return nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	app := menu.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	return app.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
