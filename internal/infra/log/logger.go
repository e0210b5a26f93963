package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"attendance/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the service logger from the env section of the config
func New(params Params) (*slog.Logger, error) {
	env := params.Config.Env

	logger, err := Build(os.Stdout, env.Log, env.Debug)
	if err != nil {
		return nil, err
	}

	if env.ServiceName != "" {
		logger = logger.With(slog.String("service", env.ServiceName))
	}

	return logger, nil
}

// Build creates a text (pretty) or JSON logger writing to w.
// addSource attaches the calling file and line to each record.
func Build(w io.Writer, cfg config.Log, addSource bool) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: addSource}
	if cfg.Pretty {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// parseLogLevel converts string log level to slog.Level; empty means info
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
