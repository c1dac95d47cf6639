package wrapgen

import (
	"bytes"
	"os"

	"github.com/teranos/wrapgen/errors"
)

// CheckStatus is the outcome of comparing the committed client with a fresh
// generation
type CheckStatus int

const (
	UpToDate CheckStatus = iota
	OutOfDate
	Missing
)

func (s CheckStatus) String() string {
	switch s {
	case UpToDate:
		return "up to date"
	case OutOfDate:
		return "out of date"
	case Missing:
		return "missing"
	default:
		return "unknown"
	}
}

// CheckResult is returned by Check
type CheckResult struct {
	Status  CheckStatus
	Summary *Summary
	// Want is the freshly generated client
	Want []byte
}

// Check regenerates the client in memory and compares it with the file at
// opts.OutputPath. A stale or missing file is reported with an error marked
// ErrDrift, so callers can exit non-zero.
func Check(opts Options) (*CheckResult, error) {
	want, summary, err := Generate(opts)
	if err != nil {
		return nil, err
	}
	result := &CheckResult{Summary: summary, Want: want}

	have, err := os.ReadFile(opts.OutputPath)
	switch {
	case os.IsNotExist(err):
		result.Status = Missing
	case err != nil:
		return nil, errors.Filesystem(err, "failed to read %s", opts.OutputPath)
	case !bytes.Equal(have, want):
		result.Status = OutOfDate
	default:
		result.Status = UpToDate
		return result, nil
	}

	return result, errors.WithHint(
		errors.Mark(errors.Newf("%s is %s", opts.OutputPath, result.Status), errors.ErrDrift),
		"run wrapgen generate and commit the result",
	)
}
