/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up in the standard locations.
	FileName = "primer.yaml"

	// EnvConfig overrides the config file location.
	EnvConfig = "PRIMER_CONFIG"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendDisk     = "disk"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
)

// Type is the parsed config file. Source is the file it came from, empty when
// no file was found.
type Type struct {
	Source string `yaml:"-"`

	Log    LogConfig   `yaml:"log"`
	Output string      `yaml:"output"`
	Store  StoreConfig `yaml:"store"`
	// Seed is a YAML seed file for the api stores.
	Seed string `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// StoreConfig selects and configures the datastore backend.
type StoreConfig struct {
	Backend string `yaml:"backend"`
	// Path is the bbolt or SQLite file.
	Path    string `yaml:"path"`
	Table   string `yaml:"table"`
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
}

// Defaults returns the configuration used when no file sets a value.
func Defaults() Type {
	return Type{
		Output: "text",
		Store:  StoreConfig{Backend: BackendMemory},
	}
}

// Load reads the config file at path. An empty path falls back to
// $PRIMER_CONFIG and then the standard locations; finding no file there is
// not an error.
func Load(path string) (Type, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		path = findConfigPath()
	}
	if path == "" {
		log.Debug("no config file found, using defaults")
		return cfg, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	log.WithField("source", path).Debug("loaded config")
	return cfg, nil
}

// Validate checks the store backend name.
func (c Type) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendDisk, BackendSQLite, BackendDynamoDB:
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
}

func findConfigPath() string {
	candidates := []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
			log.Debugf("using config file: %s", file)
			return file
		}
	}
	return ""
}

// LoadEnv loads .env files into the environment without overriding variables
// that are already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
		log.WithField("file", f).Debug("loaded env file")
	}
	return nil
}
