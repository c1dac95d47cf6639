package am

import (
	"go/token"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/wrapgen/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Source.Dir == "" {
		return errors.Config("source.dir cannot be empty")
	}

	// Extension includes the dot: ".go"
	if len(c.Source.Extension) < 2 || !strings.HasPrefix(c.Source.Extension, ".") {
		return errors.Config("source.extension must start with '.', got %q", c.Source.Extension)
	}

	for _, name := range c.Source.Reserved {
		if strings.TrimSpace(name) == "" {
			return errors.Config("source.reserved cannot contain empty names")
		}
	}

	if c.Source.ImportBase == "" {
		return errors.WithHint(
			errors.Config("source.import_base cannot be empty"),
			"set source.import_base to the import path of source.dir, e.g. \"example.com/petstore/openapi/apis\"",
		)
	}

	if c.Output.Path == "" {
		return errors.Config("output.path cannot be empty")
	}
	if filepath.Ext(c.Output.Path) != ".go" {
		return errors.Config("output.path must name a .go file, got %q", c.Output.Path)
	}

	idents := []struct {
		key   string
		value string
	}{
		{"output.package", c.Output.Package},
		{"output.client_type", c.Output.ClientType},
		{"output.config_field", c.Output.ConfigField},
		{"output.receiver", c.Output.Receiver},
	}
	for _, id := range idents {
		if !token.IsIdentifier(id.value) {
			return errors.Config("%s must be a Go identifier, got %q", id.key, id.value)
		}
	}

	// Watch: 0 debounce = regenerate on every event, 0 runs = unlimited
	if c.Watch.DebounceMS < 0 {
		return errors.Config("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}
	if c.Watch.MaxRunsPerMinute < 0 {
		return errors.Config("watch.max_runs_per_minute must be >= 0, got %d", c.Watch.MaxRunsPerMinute)
	}

	switch c.Log.Theme {
	case "", "everforest", "gruvbox", "plain":
	default:
		return errors.Config("log.theme must be one of everforest, gruvbox, plain; got %q", c.Log.Theme)
	}

	if c.WrapgenVersion != "" {
		if _, err := semver.NewConstraint(c.WrapgenVersion); err != nil {
			return errors.Mark(errors.Wrapf(err, "wrapgen_version %q is not a valid constraint", c.WrapgenVersion), errors.ErrConfig)
		}
	}

	return nil
}
