package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/wrapgen"
)

// CheckCmd fails when the generated client is stale
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if the generated client is up to date",
	Long: `Regenerate the client in memory and compare it with output.path.
Nothing is written.

Exit codes:
  0 - Client is up to date
  1 - Client is out of date or missing, or generation failed

Examples:
  wrapgen check                 # Check the client from wrapgen.toml
  wrapgen check -o client.go    # Check another file`,
	RunE: runCheck,
}

func init() {
	addGenerateFlags(CheckCmd.Flags())
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := wrapgen.Check(optionsFor(cfg))
	if result == nil {
		return err
	}

	if result.Status == wrapgen.UpToDate {
		pterm.Success.Printf("%s is up to date (%d API functions)\n", cfg.Output.Path, result.Summary.Functions)
		return nil
	}

	pterm.Warning.Printf("%s is %s\n", cfg.Output.Path, result.Status)
	return err
}
