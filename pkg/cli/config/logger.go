package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
	"github.com/secmon-lab/cmkdiscovery/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
}

var logFormats = map[string]logging.Format{
	"":        logging.FormatAuto,
	"auto":    logging.FormatAuto,
	"console": logging.FormatConsole,
	"json":    logging.FormatJSON,
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("CMKDISCOVERY_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("CMKDISCOVERY_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure sets up the logger. Logs go to stderr; stdout is reserved for the
// invocation result.
func (l *Logger) Configure() (*slog.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return logging.NewLoggerWithFormat(logging.ParseLogLevel(l.Level), os.Stderr, logFormats[l.Format]), nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	if !logLevels[l.Level] {
		return goerr.New("invalid log level",
			goerr.V("level", l.Level),
			goerr.T(model.ErrTagConfiguration))
	}
	if _, ok := logFormats[l.Format]; !ok {
		return goerr.New("invalid log format",
			goerr.V("format", l.Format),
			goerr.T(model.ErrTagConfiguration))
	}
	return nil
}
