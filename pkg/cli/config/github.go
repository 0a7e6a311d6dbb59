package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/octogate/pkg/infra/gh"
	"github.com/urfave/cli/v3"
)

// GitHub configures the upstream GitHub REST API.
type GitHub struct {
	baseURL string
	timeout time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub REST API base URL, e.g. https://ghe.example.com/api/v3/",
			Category:    "GitHub",
			Value:       "https://api.github.com/",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("OCTOGATE_GITHUB_BASE_URL"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of each GitHub API call",
			Category:    "GitHub",
			Value:       gh.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("OCTOGATE_GITHUB_TIMEOUT"),
		},
	}
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("BaseURL", x.baseURL),
		slog.Duration("Timeout", x.timeout),
	)
}

func (x *GitHub) New() (*gh.Client, error) {
	baseURL, err := gh.ParseBaseURL(x.baseURL)
	if err != nil {
		return nil, err
	}

	return gh.New(
		gh.WithBaseURL(baseURL),
		gh.WithTimeout(x.timeout),
	)
}
