package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultPath = "./config.yaml"

// Load is LoadFrom with the path taken from CONFIG_PATH.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom builds the configuration from, in increasing priority: env-default
// tags, the YAML file, ./.env and the process environment. Values from .env
// never replace variables that are already set.
//
// An empty path falls back to ./config.yaml when that file exists and to
// the environment alone when it does not. A non-empty path must exist.
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	file, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if file == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(file, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", describe(file), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config: file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath, nil
	}
	return "", nil
}

func describe(file string) string {
	if file == "" {
		return "environment"
	}
	return file
}
