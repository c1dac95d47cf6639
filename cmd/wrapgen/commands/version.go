package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show wrapgen version information",
	Long: `Display version, build time, commit hash, and platform information for the wrapgen binary.

The version is what wrapgen_version constraints in wrapgen.toml are checked
against; development builds satisfy every constraint.`,
	RunE: runVersion,
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	VersionCmd.Flags().Bool("short", false, "Print the version only")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	info := version.Get()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintln(out, info.Version)
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to format version info")
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, info.String())
	fmt.Fprintf(out, "Platform: %s\n", info.Platform)
	fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
	return nil
}
