package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/am"
	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/logger"
	"github.com/teranos/wrapgen/version"
	"github.com/teranos/wrapgen/wrapgen"
	"github.com/teranos/wrapgen/wrapgen/golang"
)

// GenerateCmd writes the client methods
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the client methods",
	Long: `Discover every API module in source.dir, extract its API functions and
write one forwarding method per function to output.path.

A function is an API function when it is exported, takes context.Context
first, has a parameter named configuration and returns (T, Error[E]).
Functions with the same name in several modules are numbered: Foo, Foo_2.

The file is replaced atomically; a failed run leaves it untouched.`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(GenerateCmd.Flags())
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := optionsFor(cfg)
	opts.Report = os.Stdout

	summary, err := wrapgen.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if logger.ShouldOutput(logger.Verbosity, logger.OutputProgress) {
		pterm.Success.Printf("Wrote %s (%d modules)\n", summary.Output, summary.Modules)
	}
	return nil
}

// loadConfig loads, validates and version-checks the configuration
func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	if err := version.CheckConstraint(cfg.WrapgenVersion); err != nil {
		return nil, err
	}

	if logger.ShouldOutput(logger.Verbosity, logger.OutputConfig) {
		logger.Debugw("Configuration loaded",
			logger.FieldFile, am.ConfigFileUsed(),
			logger.FieldDir, cfg.SourceDir(),
			logger.FieldPath, cfg.OutputPath())
	}
	return cfg, nil
}

func optionsFor(cfg *am.Config) wrapgen.Options {
	return wrapgen.Options{
		Dir: cfg.SourceDir(),
		Discover: wrapgen.DiscoverOptions{
			Extension: cfg.Source.Extension,
			Reserved:  cfg.Source.Reserved,
		},
		OutputPath: cfg.OutputPath(),
		Generator: &golang.Generator{
			Package:     cfg.Output.Package,
			ClientType:  cfg.Output.ClientType,
			ConfigField: cfg.Output.ConfigField,
			Receiver:    cfg.Output.Receiver,
			ImportBase:  cfg.Source.ImportBase,
			Filename:    cfg.OutputPath(),
		},
		PostGenerate: cfg.Hooks.PostGenerate,
	}
}
