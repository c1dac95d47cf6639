package am

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/teranos/wrapgen/errors"
)

// UnknownKeys decodes a wrapgen.toml strictly and returns the keys no
// setting consumes, sorted. Viper ignores them, so a typo such as
// [ouput] silently falls back to the default.
func UnknownKeys(path string) ([]string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to decode %s", path), errors.ErrConfig)
	}

	var keys []string
	for _, key := range md.Undecoded() {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	return keys, nil
}
