// Package am holds wrapgen's configuration: where API modules live, how they
// are recognised, and what the generated client looks like.
package am

import (
	"fmt"
	"path/filepath"
)

// ProjectConfigName is the project configuration file searched for by walking
// up from the working directory.
const ProjectConfigName = "wrapgen.toml"

// Config represents the wrapgen configuration
type Config struct {
	WrapgenVersion string       `mapstructure:"wrapgen_version" toml:"wrapgen_version,omitempty" yaml:"wrapgen_version,omitempty"` // semver constraint on the running binary
	Source         SourceConfig `mapstructure:"source" toml:"source" yaml:"source"`
	Output         OutputConfig `mapstructure:"output" toml:"output" yaml:"output"`
	Hooks          HooksConfig  `mapstructure:"hooks" toml:"hooks" yaml:"hooks"`
	Watch          WatchConfig  `mapstructure:"watch" toml:"watch" yaml:"watch"`
	Log            LogConfig    `mapstructure:"log" toml:"log" yaml:"log"`

	// BaseDir anchors relative paths; the directory of the config file in use
	BaseDir string `mapstructure:"-" toml:"-" yaml:"-"`
}

// SourceConfig describes the directory of API modules
type SourceConfig struct {
	Dir        string   `mapstructure:"dir" toml:"dir" yaml:"dir"`
	Extension  string   `mapstructure:"extension" toml:"extension" yaml:"extension"`
	Reserved   []string `mapstructure:"reserved" toml:"reserved" yaml:"reserved"`          // directory names that are never API modules
	ImportBase string   `mapstructure:"import_base" toml:"import_base" yaml:"import_base"` // import path of source.dir; modules are <import_base>/<module>
}

// OutputConfig describes the generated client file
type OutputConfig struct {
	Path        string `mapstructure:"path" toml:"path" yaml:"path"`
	Package     string `mapstructure:"package" toml:"package" yaml:"package"`
	ClientType  string `mapstructure:"client_type" toml:"client_type" yaml:"client_type"`
	ConfigField string `mapstructure:"config_field" toml:"config_field" yaml:"config_field"`
	Receiver    string `mapstructure:"receiver" toml:"receiver" yaml:"receiver"`
}

// HooksConfig configures commands run around generation
type HooksConfig struct {
	PostGenerate string `mapstructure:"post_generate" toml:"post_generate" yaml:"post_generate"` // run with the output path appended
}

// WatchConfig configures `wrapgen watch`
type WatchConfig struct {
	DebounceMS       int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms"`
	MaxRunsPerMinute int `mapstructure:"max_runs_per_minute" toml:"max_runs_per_minute" yaml:"max_runs_per_minute"` // 0 = unlimited
}

// LogConfig configures log output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json"`
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme"` // everforest, gruvbox, plain
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// SourceDir returns source.dir resolved against BaseDir
func (c *Config) SourceDir() string {
	return c.resolve(c.Source.Dir)
}

// OutputPath returns output.path resolved against BaseDir
func (c *Config) OutputPath() string {
	return c.resolve(c.Output.Path)
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.BaseDir == "" {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Source: {Dir: %s, ImportBase: %s}, Output: {Path: %s, Package: %s}}",
		c.Source.Dir, c.Source.ImportBase, c.Output.Path, c.Output.Package)
}
