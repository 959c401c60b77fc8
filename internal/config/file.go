package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML config file. Values set here override the
// stored preferences at startup, which is handy for scripted launches and
// for pointing a second instance at a different board file.
type FileConfig struct {
	BoardFile   string  `yaml:"board_file"`
	OrbitRadius float64 `yaml:"orbit_radius"`
	LogLevel    string  `yaml:"log_level"`  // "debug" | "info" | "warn" | "error"
	PrettyLog   bool    `yaml:"pretty_log"` // true => colored dev output, false => JSON
}

// LoadFile reads the config file if it exists. A missing file yields a zero
// config with no error; a malformed file is an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		path = defaultConfigFile()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{PrettyLog: true}, nil
		}
		return FileConfig{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := FileConfig{PrettyLog: true}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Apply writes the file overrides into the preference-backed settings
func (c FileConfig) Apply(s *Settings) {
	if c.BoardFile != "" {
		s.SetBoardFile(c.BoardFile)
	}
	if c.OrbitRadius != 0 {
		s.SetOrbitRadius(c.OrbitRadius)
	}
	if c.LogLevel != "" {
		s.SetLogLevel(c.LogLevel)
	}
}

func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "orbit.yaml"
	}
	return filepath.Join(dir, "orbit", "config.yaml")
}
