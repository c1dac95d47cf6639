package am

import (
	"github.com/spf13/viper"
)

// Defaults reproduce the conventional layout of a generated API package:
// one package directory per module in openapi/apis, next to the reserved
// client and configuration packages.
const (
	DefaultSourceDir        = "openapi/apis"
	DefaultExtension        = ".go"
	DefaultOutputPath       = "client/api_methods_gen.go"
	DefaultOutputPackage    = "client"
	DefaultClientType       = "Client"
	DefaultConfigField      = "config"
	DefaultReceiver         = "c"
	DefaultDebounceMS       = 500
	DefaultMaxRunsPerMinute = 30
	DefaultLogTheme         = "everforest"
)

// DefaultReserved lists module names that are never treated as API modules
func DefaultReserved() []string {
	return []string{"client", "configuration"}
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("wrapgen_version", "")

	v.SetDefault("source.dir", DefaultSourceDir)
	v.SetDefault("source.extension", DefaultExtension)
	v.SetDefault("source.reserved", DefaultReserved())
	v.SetDefault("source.import_base", "")

	v.SetDefault("output.path", DefaultOutputPath)
	v.SetDefault("output.package", DefaultOutputPackage)
	v.SetDefault("output.client_type", DefaultClientType)
	v.SetDefault("output.config_field", DefaultConfigField)
	v.SetDefault("output.receiver", DefaultReceiver)

	v.SetDefault("hooks.post_generate", "")

	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
	v.SetDefault("watch.max_runs_per_minute", DefaultMaxRunsPerMinute)

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", DefaultLogTheme)
}

// Default returns a Config holding only the built-in defaults
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Dir:       DefaultSourceDir,
			Extension: DefaultExtension,
			Reserved:  DefaultReserved(),
		},
		Output: OutputConfig{
			Path:        DefaultOutputPath,
			Package:     DefaultOutputPackage,
			ClientType:  DefaultClientType,
			ConfigField: DefaultConfigField,
			Receiver:    DefaultReceiver,
		},
		Watch: WatchConfig{
			DebounceMS:       DefaultDebounceMS,
			MaxRunsPerMinute: DefaultMaxRunsPerMinute,
		},
		Log: LogConfig{Theme: DefaultLogTheme},
	}
}
