package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/migration-world/tabmigrate/pkg/cli/config"
)

func writeDefaults(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestTableauLoad(t *testing.T) {
	t.Run("No defaults file is a no-op", func(t *testing.T) {
		cfg := config.Tableau{ServerURL: "https://tableau.example.com"}
		gt.NoError(t, cfg.Load())
		gt.Equal(t, cfg.ServerURL, "https://tableau.example.com")
	})

	t.Run("File values fill empty fields", func(t *testing.T) {
		path := writeDefaults(t, "server_url: https://tableau.example.com\nsite_url: marketing\ntoken_name: automation\n")

		cfg := config.Tableau{DefaultsFile: path}
		gt.NoError(t, cfg.Load())
		gt.Equal(t, cfg.ServerURL, "https://tableau.example.com")
		gt.Equal(t, cfg.SiteURL, "marketing")
		gt.Equal(t, cfg.TokenName, "automation")
	})

	t.Run("Flag values win over file values", func(t *testing.T) {
		path := writeDefaults(t, "server_url: https://file.example.com\nsite_url: from-file\n")

		cfg := config.Tableau{
			ServerURL:    "https://flag.example.com",
			DefaultsFile: path,
		}
		gt.NoError(t, cfg.Load())
		gt.Equal(t, cfg.ServerURL, "https://flag.example.com")
		gt.Equal(t, cfg.SiteURL, "from-file")
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		cfg := config.Tableau{DefaultsFile: filepath.Join(t.TempDir(), "nope.yml")}
		gt.Error(t, cfg.Load())
	})

	t.Run("Malformed YAML is an error", func(t *testing.T) {
		path := writeDefaults(t, "server_url: [unclosed\n")
		cfg := config.Tableau{DefaultsFile: path}
		gt.Error(t, cfg.Load())
	})
}
