package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the process settings. Everything has a default so the server
// starts with no config file at all.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	CORS struct {
		AllowedOrigin string `yaml:"allowed_origin"`
	} `yaml:"cors"`
}

func defaults() *Config {
	var cfg Config
	cfg.Server.Addr = ":8008"
	cfg.Database.Path = "betterfocus.db"
	cfg.CORS.AllowedOrigin = "*"
	return &cfg
}

// Load reads config.yaml from the working directory, expanding ${ENV}
// placeholders. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile("config.yaml")
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Replace environment variables in the YAML content
	content := string(data)
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		placeholder := "${" + pair[0] + "}"
		content = strings.ReplaceAll(content, placeholder, pair[1])
	}

	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8008"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "betterfocus.db"
	}
	if cfg.CORS.AllowedOrigin == "" {
		cfg.CORS.AllowedOrigin = "*"
	}
	return cfg, nil
}
