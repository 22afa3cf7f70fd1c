package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Tableau holds default connection settings for the UI forms. The submitted
// form always overrides these; credential secrets never come from flags.
type Tableau struct {
	ServerURL    string
	SiteURL      string
	TokenName    string
	DefaultsFile string
}

// Flags returns CLI flags for Tableau configuration
func (t *Tableau) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tableau-server-url",
			Usage:       "Default Tableau Server/Cloud URL shown in the connection form",
			Category:    "Tableau",
			Sources:     cli.EnvVars("TABMIGRATE_TABLEAU_SERVER_URL"),
			Destination: &t.ServerURL,
		},
		&cli.StringFlag{
			Name:        "tableau-site-url",
			Usage:       "Default site content URL (empty for the Default site)",
			Category:    "Tableau",
			Sources:     cli.EnvVars("TABMIGRATE_TABLEAU_SITE_URL"),
			Destination: &t.SiteURL,
		},
		&cli.StringFlag{
			Name:        "tableau-token-name",
			Usage:       "Default personal access token name shown in the connection form",
			Category:    "Tableau",
			Sources:     cli.EnvVars("TABMIGRATE_TABLEAU_TOKEN_NAME"),
			Destination: &t.TokenName,
		},
		&cli.StringFlag{
			Name:        "defaults",
			Usage:       "Path to a YAML file with the same default connection settings",
			Category:    "Tableau",
			Sources:     cli.EnvVars("TABMIGRATE_DEFAULTS_FILE"),
			Destination: &t.DefaultsFile,
		},
	}
}

// defaultsFile mirrors the flag fields for YAML loading
type defaultsFile struct {
	ServerURL string `yaml:"server_url"`
	SiteURL   string `yaml:"site_url"`
	TokenName string `yaml:"token_name"`
}

// Load merges the optional YAML defaults file into the configuration.
// Flag and environment values win over file values.
func (t *Tableau) Load() error {
	if t.DefaultsFile == "" {
		return nil
	}

	data, err := os.ReadFile(t.DefaultsFile)
	if err != nil {
		return goerr.Wrap(err, "failed to read defaults file", goerr.V("path", t.DefaultsFile))
	}

	var file defaultsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return goerr.Wrap(err, "failed to parse defaults file", goerr.V("path", t.DefaultsFile))
	}

	if t.ServerURL == "" {
		t.ServerURL = file.ServerURL
	}
	if t.SiteURL == "" {
		t.SiteURL = file.SiteURL
	}
	if t.TokenName == "" {
		t.TokenName = file.TokenName
	}
	return nil
}

// LogValue returns structured log value
func (t Tableau) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("server_url", t.ServerURL),
		slog.String("site_url", t.SiteURL),
		slog.Bool("has_token_name", t.TokenName != ""),
		slog.String("defaults_file", t.DefaultsFile),
	)
}
