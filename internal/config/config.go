// Package config provides configuration loading for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/spf13/viper"
)

// Dataset sources.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Files names the four input tables inside the data directory.
type Files struct {
	Initiatives string
	Funnel      string
	Votes       string
	Details     string
}

// Config holds the dataset and UI settings.
type Config struct {
	Files   Files
	DataDir string
	Source  string
	DBPath  string
	Theme   string
	LogFile string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		DataDir: ".",
		Source:  SourceCSV,
		DBPath:  "~/.config/parlatoga/parlatoga.db",
		Theme:   "default",
		Files: Files{
			Initiatives: "donutdata.csv",
			Funnel:      "funneldata.csv",
			Votes:       "votedata2.csv",
			Details:     "detalhevoto.csv",
		},
	}
}

// Load reads the configuration from Viper, falling back to PARLATOGA_DATA_DIR
// and then to the defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if v := viper.GetString("data.dir"); v != "" {
		cfg.DataDir = v
	} else if v := os.Getenv("PARLATOGA_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := viper.GetString("data.source"); v != "" {
		cfg.Source = v
	}
	if v := viper.GetString("data.db"); v != "" {
		cfg.DBPath = v
	}
	if v := viper.GetString("data.files.initiatives"); v != "" {
		cfg.Files.Initiatives = v
	}
	if v := viper.GetString("data.files.funnel"); v != "" {
		cfg.Files.Funnel = v
	}
	if v := viper.GetString("data.files.votes"); v != "" {
		cfg.Files.Votes = v
	}
	if v := viper.GetString("data.files.details"); v != "" {
		cfg.Files.Details = v
	}
	if v := viper.GetString("ui.theme"); v != "" {
		cfg.Theme = v
	}
	cfg.LogFile = viper.GetString("logging.file")

	cfg.DataDir = ExpandPath(cfg.DataDir)
	cfg.DBPath = ExpandPath(cfg.DBPath)
	cfg.LogFile = ExpandPath(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to load a dataset.
func (c Config) Validate() error {
	switch c.Source {
	case SourceCSV:
		if strings.TrimSpace(c.DataDir) == "" {
			return fmt.Errorf("%w: data directory", common.ErrMissingConfig)
		}
		for name, file := range map[string]string{
			"initiatives": c.Files.Initiatives,
			"funnel":      c.Files.Funnel,
			"votes":       c.Files.Votes,
			"details":     c.Files.Details,
		} {
			if strings.TrimSpace(file) == "" {
				return fmt.Errorf("%w: %s file", common.ErrMissingConfig, name)
			}
		}
	case SourceSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("%w: database path", common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source %q (want csv or sqlite)", common.ErrInvalidConfig, c.Source)
	}
	return nil
}

// InitiativesPath returns the full path of the initiatives table.
func (c Config) InitiativesPath() string { return c.path(c.Files.Initiatives) }

// FunnelPath returns the full path of the funnel table.
func (c Config) FunnelPath() string { return c.path(c.Files.Funnel) }

// VotesPath returns the full path of the vote table.
func (c Config) VotesPath() string { return c.path(c.Files.Votes) }

// DetailsPath returns the full path of the vote detail table.
func (c Config) DetailsPath() string { return c.path(c.Files.Details) }

func (c Config) path(file string) string {
	file = ExpandPath(file)
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
