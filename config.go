package consolida

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config drives a consolidation run: where the statements and corrections
// live, where the workbook goes, and the cutoff date bounding the
// transaction replay.
type Config struct {
	InputDir       string `toml:"input_dir"`
	CorrectionsDir string `toml:"corrections_dir"`
	OutputFile     string `toml:"output_file"`
	CutoffDate     string `toml:"cutoff_date"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		InputDir:       "extratos",
		CorrectionsDir: "correcoes",
		OutputFile:     "consolidado.xlsx",
		CutoffDate:     Today().String(),
	}
}

// LoadConfig reads the TOML configuration at path. When the file does not
// exist yet, a default one is written there first so the user has something
// to edit. Any other failure is a ConfigError.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := DefaultConfig().Save(path); err != nil {
			return nil, &ConfigError{Field: path, Cause: err}
		}
		log.Printf("created default configuration at %s, review it before the next run", path)
	}

	c := DefaultConfig()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, &ConfigError{Field: path, Cause: err}
	}
	return c, nil
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Cutoff parses the configured cutoff date. An absent or malformed value is
// a ConfigError: without a cutoff the replay has no defined end.
func (c *Config) Cutoff() (Date, error) {
	if c.CutoffDate == "" {
		return Date{}, &ConfigError{Field: "cutoff_date", Cause: errMissingCutoff}
	}
	on, err := ParseDate(c.CutoffDate)
	if err != nil {
		return Date{}, &ConfigError{Field: "cutoff_date", Cause: err}
	}
	return on, nil
}

// SplitsFile is the corrections workbook listing splits and reverse splits.
func (c *Config) SplitsFile() string {
	return filepath.Join(c.CorrectionsDir, "desdobramentos.xlsx")
}

// RenamesFile is the corrections workbook listing ticker renames.
func (c *Config) RenamesFile() string {
	return filepath.Join(c.CorrectionsDir, "renomeacoes.xlsx")
}
