package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/wrapgen/errors"
)

// EnvPrefix prefixes environment overrides: WRAPGEN_SOURCE_DIR, WRAPGEN_OUTPUT_PATH, ...
const EnvPrefix = "WRAPGEN"

var (
	globalConfig  *Config
	viperInstance *viper.Viper
	explicitPath  string
	loadedPath    string
	readErr       error
)

// Load reads the wrapgen configuration using Viper.
// Precedence (lowest to highest): defaults < wrapgen.toml < WRAPGEN_* env vars < bound flags.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()
	if readErr != nil {
		return nil, readErr
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	config.BaseDir = baseDirFor(loadedPath)

	globalConfig = config
	return globalConfig, nil
}

// UseConfigFile makes Load read path instead of searching for wrapgen.toml.
// It resets any cached configuration.
func UseConfigFile(path string) {
	Reset()
	explicitPath = path
}

// GetViper returns the Viper instance for advanced configuration access,
// e.g. binding command-line flags before Load.
func GetViper() *viper.Viper {
	return initViper()
}

// ConfigFileUsed returns the configuration file merged by Load, or "" when
// only defaults and environment apply.
func ConfigFileUsed() string {
	initViper()
	return loadedPath
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to unmarshal config"), errors.ErrConfig)
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path.
// Environment variables are not consulted.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", configPath)
	}
	config.BaseDir = baseDirFor(configPath)
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
	explicitPath = ""
	loadedPath = ""
	readErr = nil
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	path := explicitPath
	if path == "" {
		path = findProjectConfig()
	}
	if path != "" {
		readErr = readConfigFile(v, path)
		if readErr == nil {
			loadedPath = path
		}
	}

	viperInstance = v
	return v
}

func readConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Mark(errors.Filesystem(err, "failed to read config file %s", path), errors.ErrConfig)
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return errors.WithHint(
			errors.Mark(errors.Wrapf(err, "failed to read config file %s", path), errors.ErrConfig),
			"wrapgen.toml must be valid TOML; run 'wrapgen am init' for a starting point",
		)
	}
	return nil
}

// findProjectConfig searches for wrapgen.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectConfigName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func baseDirFor(configPath string) string {
	if configPath == "" {
		return ""
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return filepath.Dir(configPath)
	}
	return filepath.Dir(abs)
}
