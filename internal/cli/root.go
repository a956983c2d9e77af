// Package cli wires configuration, logging, the fetch service, and the
// dashboard together behind the root command.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cli/go-gh/v2/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/s22625/ghdash/internal/config"
	"github.com/s22625/ghdash/internal/dashboard"
	"github.com/s22625/ghdash/internal/gh"
	"github.com/s22625/ghdash/internal/service"
)

// GlobalOptions holds flags shared across the command.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string
	Demo       bool
}

var globalOpts = &GlobalOptions{}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ghdash",
	Short: "Terminal dashboard for GitHub Actions workflow runs",
	Long: `ghdash continuously polls the GitHub Actions API for the latest
workflow runs across a configured set of repositories and renders them
as a live-updating table, with a job-level detail view per run.

Configure repositories in ~/.config/ghdash/config.yaml:

  repos:
    - owner: s22625
      name: ghdash
      branch: main`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "Path to config file (or set GHDASH_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.LogLevel, "log-level", "", "Log level (error|warn|info|debug)")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Demo, "demo", false, "Run against generated data instead of the GitHub API")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(globalOpts.ConfigPath)
	if err != nil {
		return err
	}
	if !globalOpts.Demo && len(cfg.Repos) == 0 {
		return fmt.Errorf("no repositories configured (add a repos list to ~/.config/ghdash/config.yaml, or try --demo)")
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	svc, err := buildService(cfg, logger)
	if err != nil {
		return err
	}

	// The browser helper's output goes to the log file; the TUI owns the
	// terminal.
	b := browser.New("", io.Discard, io.Discard)

	panel := dashboard.NewRunListPanel(svc, cfg.Repos, b, logger)
	app := dashboard.NewApp(panel)

	logger.Info("starting dashboard", "repos", len(cfg.Repos), "demo", globalOpts.Demo)
	return app.Run()
}

func buildService(cfg *config.Config, logger *log.Logger) (service.WorkflowService, error) {
	if globalOpts.Demo {
		return service.NewRandomFake(time.Now().UnixNano()), nil
	}

	token, err := cfg.Token()
	if err != nil {
		return nil, err
	}
	client, err := gh.NewClient(cfg.Host, token)
	if err != nil {
		return nil, err
	}
	return service.NewGitHub(client, logger), nil
}

func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	path := cfg.DefaultLogFile()
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           parseLevel(cfg, globalOpts.LogLevel),
	})
	return logger, func() { _ = f.Close() }, nil
}

func parseLevel(cfg *config.Config, flagLevel string) log.Level {
	level := flagLevel
	if level == "" {
		level = cfg.LogLevel
	}
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
