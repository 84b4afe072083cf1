package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Discovery holds the target host and discovery mode
type Discovery struct {
	HostName   string
	State      string
	ParamsFile string
}

// Flags returns CLI flags for Discovery configuration
func (d *Discovery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "host-name",
			Usage:       "Host whose services are discovered",
			Category:    "Discovery",
			Sources:     cli.EnvVars("CMK_HOST_NAME"),
			Destination: &d.HostName,
		},
		&cli.StringFlag{
			Name:        "state",
			Usage:       "Discovery mode (new, remove, fix_all, refresh, only_host_labels). Defaults to new",
			Category:    "Discovery",
			Sources:     cli.EnvVars("CMK_STATE"),
			Destination: &d.State,
		},
		&cli.StringFlag{
			Name:        "params-file",
			Usage:       "YAML file with task parameters; explicit flags take precedence",
			Category:    "Discovery",
			Sources:     cli.EnvVars("CMK_PARAMS_FILE"),
			Destination: &d.ParamsFile,
		},
	}
}

// LogValue returns structured log value
func (d Discovery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host_name", d.HostName),
		slog.String("state", d.State),
		slog.String("params_file", d.ParamsFile),
	)
}
