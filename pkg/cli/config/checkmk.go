package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/cmkdiscovery/pkg/service/checkmk"
	"github.com/urfave/cli/v3"
)

// Checkmk holds connection settings for a Checkmk site
type Checkmk struct {
	ServerURL string
	Site      string
	User      string
	Secret    string
	Timeout   time.Duration
	Insecure  bool
}

// Flags returns CLI flags for Checkmk configuration
func (c *Checkmk) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "server-url",
			Usage:       "Base URL of the Checkmk server including trailing slash (e.g. http://localhost/)",
			Category:    "Checkmk",
			Sources:     cli.EnvVars("CMK_SERVER_URL"),
			Destination: &c.ServerURL,
		},
		&cli.StringFlag{
			Name:        "site",
			Usage:       "Checkmk site name",
			Category:    "Checkmk",
			Sources:     cli.EnvVars("CMK_SITE"),
			Destination: &c.Site,
		},
		&cli.StringFlag{
			Name:        "automation-user",
			Usage:       "Automation user for the REST API",
			Category:    "Checkmk",
			Sources:     cli.EnvVars("CMK_AUTOMATION_USER"),
			Destination: &c.User,
		},
		&cli.StringFlag{
			Name:        "automation-secret",
			Usage:       "Automation secret for the REST API (prefer the environment variable)",
			Category:    "Checkmk",
			Sources:     cli.EnvVars("CMK_AUTOMATION_SECRET"),
			Destination: &c.Secret,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Request timeout (0 keeps the transport default)",
			Category:    "Checkmk",
			Sources:     cli.EnvVars("CMK_TIMEOUT"),
			Destination: &c.Timeout,
		},
		&cli.BoolFlag{
			Name:        "insecure",
			Usage:       "Skip TLS certificate verification",
			Category:    "Checkmk",
			Sources:     cli.EnvVars("CMK_INSECURE"),
			Destination: &c.Insecure,
		},
	}
}

// Configure creates and returns a Checkmk client
func (c *Checkmk) Configure() *checkmk.Client {
	return checkmk.New(
		checkmk.WithTimeout(c.Timeout),
		checkmk.WithInsecureSkipVerify(c.Insecure),
	)
}

// LogValue returns structured log value
func (c Checkmk) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("server_url", c.ServerURL),
		slog.String("site", c.Site),
		slog.String("user", c.User),
		slog.Bool("has_secret", c.Secret != ""),
		slog.Duration("timeout", c.Timeout),
		slog.Bool("insecure", c.Insecure),
	)
}
