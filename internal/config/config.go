package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	UI       UIConfig       `yaml:"ui"`
	Features FeaturesConfig `yaml:"features"`
}

type StorageConfig struct {
	Backend     string `yaml:"backend"` // "file" or "postgres"
	Dir         string `yaml:"dir"`
	PostgresURL string `yaml:"postgres_url"`
}

type LoggingConfig struct {
	Development bool   `yaml:"development"`
	File        string `yaml:"file"`
}

type UIConfig struct {
	NoticeTTL time.Duration `yaml:"notice_ttl"`
}

type FeaturesConfig struct {
	InlineEdit bool `yaml:"inline_edit"`
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Dir:     "data",
		},
		Logging: LoggingConfig{
			File: "gottado.log",
		},
		UI: UIConfig{
			NoticeTTL: 3 * time.Second,
		},
		Features: FeaturesConfig{
			InlineEdit: true,
		},
	}
}

// Load reads the YAML config at path. A missing file is not an error:
// the defaults are enough to run with the file backend.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.UI.NoticeTTL <= 0 {
		cfg.UI.NoticeTTL = 3 * time.Second
	}

	return cfg, nil
}
