package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/rowcheck/internal/adapter"
	"github.com/leapstack-labs/rowcheck/internal/check"
	"github.com/leapstack-labs/rowcheck/internal/cli/config"
	"github.com/leapstack-labs/rowcheck/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	DB       adapter.Adapter
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a connected adapter.
// Returns the context and a cleanup function that must be called
// (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	db, err := connectAdapter(cmd, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	cleanup := func() {
		_ = db.Close()
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		DB:       db,
		Renderer: r,
	}, cleanup, nil
}

// getConfig returns the current configuration, falling back to
// environment variables when no config was loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Target: &config.TargetConfig{
			Type: getEnvOrDefault("ROWCHECK_TARGET_TYPE", config.DefaultTargetType),
			Path: os.Getenv("ROWCHECK_TARGET_PATH"),
		},
		Severity:     getEnvOrDefault("ROWCHECK_SEVERITY", config.DefaultSeverity),
		Commas:       os.Getenv("ROWCHECK_COMMAS") != "no",
		Verbose:      os.Getenv("ROWCHECK_VERBOSE") == "true",
		OutputFormat: getEnvOrDefault("ROWCHECK_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func connectAdapter(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (adapter.Adapter, error) {
	target := cfg.Target
	if target == nil {
		target = &config.TargetConfig{Type: config.DefaultTargetType}
	}

	db, err := adapter.New(target.Type)
	if err != nil {
		return nil, err
	}

	adapterCfg := adapter.Config{
		Type:     target.Type,
		Path:     target.Path,
		Host:     target.Host,
		Port:     target.Port,
		Database: target.Database,
		Username: target.Username,
		Password: target.Password,
		Schema:   target.Schema,
		Options:  target.Options,
	}
	if err := db.Connect(cmd.Context(), adapterCfg); err != nil {
		return nil, fmt.Errorf("failed to connect to %s target: %w", target.Type, err)
	}

	logger.Debug("connected to target", "type", target.Type, "path", target.Path)
	return db, nil
}

// renderEmitter routes check messages to the renderer.
type renderEmitter struct {
	r *output.Renderer
}

func (e renderEmitter) Emit(level check.Level, text string) {
	switch level {
	case check.LevelNote:
		e.r.Note(text)
	case check.LevelWarning:
		e.r.Warning(text)
	default:
		e.r.Error(text)
	}
}
