package logger

// OutputCategory defines a category of output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed.
//
//	0 (default) - count line, errors with hints
//	1 (-v)      - + modules discovered, output written, hook runs
//	2 (-vv)     - + resolved configuration, timing
//	3 (-vvv)    - + functions and parameters left out of the client
type OutputCategory int

const (
	// Level 0 - Always shown
	OutputResults OutputCategory = iota // Count line, check verdict
	OutputErrors                        // Errors with hints

	// Level 1 (-v)
	OutputProgress // Per-module progress
	OutputWrites   // Output file and hook activity

	// Level 2 (-vv)
	OutputConfig // Resolved configuration values
	OutputTiming // Run duration

	// Level 3 (-vvv)
	OutputExclusions // Silently excluded functions and parameters
)

var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputProgress:   VerbosityInfo,
	OutputWrites:     VerbosityInfo,
	OutputConfig:     VerbosityDebug,
	OutputTiming:     VerbosityDebug,
	OutputExclusions: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:    "results",
	OutputErrors:     "errors",
	OutputProgress:   "progress",
	OutputWrites:     "writes",
	OutputConfig:     "config",
	OutputTiming:     "timing",
	OutputExclusions: "exclusions",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
