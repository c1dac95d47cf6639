package am

import (
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceProject     ConfigSource = "project"     // wrapgen.toml
	SourceEnvironment ConfigSource = "environment" // WRAPGEN_* env vars
)

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key"`
	Value      interface{}  `json:"value"`
	Source     ConfigSource `json:"source"`
	SourcePath string       `json:"source_path,omitempty"` // File path or env var name
}

// Introspect lists every effective setting of the loaded configuration with
// the source that supplied it, sorted by key.
func Introspect() ([]SettingInfo, error) {
	v := GetViper()
	if readErr != nil {
		return nil, readErr
	}

	var fileKeys map[string]bool
	if loadedPath != "" {
		fv := viper.New()
		if err := readConfigFile(fv, loadedPath); err != nil {
			return nil, err
		}
		fileKeys = make(map[string]bool)
		for _, key := range fv.AllKeys() {
			fileKeys[key] = true
		}
	}

	return introspect(v.AllSettings(), fileKeys, loadedPath), nil
}

func introspect(settings map[string]interface{}, fileKeys map[string]bool, filePath string) []SettingInfo {
	var out []SettingInfo
	flattenSettings(settings, "", func(key string, value interface{}) {
		info := SettingInfo{Key: key, Value: value, Source: SourceDefault, SourcePath: "built-in default"}

		if fileKeys[key] {
			info.Source = SourceProject
			info.SourcePath = filePath
		}

		envKey := EnvKey(key)
		if _, ok := os.LookupEnv(envKey); ok {
			info.Source = SourceEnvironment
			info.SourcePath = envKey
		}

		out = append(out, info)
	})
	return out
}

// EnvKey returns the environment variable overriding a dotted config key
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// flattenSettings walks nested settings in key order, calling fn for each leaf
func flattenSettings(settings map[string]interface{}, prefix string, fn func(key string, value interface{})) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := settings[key].(map[string]interface{}); ok {
			flattenSettings(nested, fullKey, fn)
			continue
		}
		fn(fullKey, settings[key])
	}
}
