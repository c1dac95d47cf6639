package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/wrapgen/errors"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("wrapgen %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// CheckConstraint reports whether the running binary satisfies a project's
// wrapgen_version constraint. Dev builds and empty constraints always pass.
func CheckConstraint(constraint string) error {
	return checkConstraint(Version, constraint)
}

func checkConstraint(current, constraint string) error {
	if constraint == "" || current == "dev" {
		return nil
	}

	ver, err := semver.NewVersion(current)
	if err != nil {
		return errors.Wrapf(err, "invalid wrapgen version %s", current)
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "invalid version constraint %s", constraint), errors.ErrConfig)
	}

	if !c.Check(ver) {
		return errors.WithHintf(
			errors.Config("wrapgen %s does not satisfy wrapgen_version %q", current, constraint),
			"install a wrapgen release matching %s or relax wrapgen_version in %s", constraint, "wrapgen.toml",
		)
	}
	return nil
}
