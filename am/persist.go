package am

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/wrapgen/errors"
)

// Render formats the configuration as "toml" or "yaml"
func (c *Config) Render(format string) ([]byte, error) {
	switch format {
	case "", "toml":
		data, err := toml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config as TOML")
		}
		return data, nil
	case "yaml":
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config as YAML")
		}
		return data, nil
	default:
		return nil, errors.Config("unknown format %q (want toml or yaml)", format)
	}
}

// WriteProjectConfig writes cfg as wrapgen.toml in dir and returns its path.
// An existing file is only replaced when force is set, after a rotating backup.
func WriteProjectConfig(dir string, cfg *Config, force bool) (string, error) {
	path := filepath.Join(dir, ProjectConfigName)

	if _, err := os.Stat(path); err == nil {
		if !force {
			return "", errors.WithHint(
				errors.Config("%s already exists", path),
				"use --force to overwrite it (a .back1 copy is kept)",
			)
		}
		if err := createBackup(path); err != nil {
			return "", errors.Wrap(err, "failed to create backup")
		}
	}

	data, err := cfg.Render("toml")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return "", errors.Filesystem(err, "failed to write %s", path)
	}
	return path, nil
}

// createBackup keeps up to three rotating backups (.back1 newest, .back3 oldest)
func createBackup(configPath string) error {
	const keep = 3

	if err := os.Remove(fmt.Sprintf("%s.back%d", configPath, keep)); err != nil && !os.IsNotExist(err) {
		return errors.Filesystem(err, "failed to delete oldest backup of %s", configPath)
	}

	for i := keep - 1; i >= 1; i-- {
		from := fmt.Sprintf("%s.back%d", configPath, i)
		to := fmt.Sprintf("%s.back%d", configPath, i+1)
		if _, err := os.Stat(from); err == nil {
			if err := os.Rename(from, to); err != nil {
				return errors.Filesystem(err, "failed to rotate %s", from)
			}
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Filesystem(err, "failed to read config for backup")
	}
	if err := os.WriteFile(configPath+".back1", content, DefaultFilePermissions); err != nil {
		return errors.Filesystem(err, "failed to create .back1")
	}
	return nil
}
