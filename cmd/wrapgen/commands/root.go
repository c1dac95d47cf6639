package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/teranos/wrapgen/am"
	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "wrapgen",
	Short: "Generate a typed client wrapper for generated API modules",
	Long: `wrapgen reads a directory of generated API modules (one package directory
per module) and writes one Go file of forwarding methods on your client type,
so callers never pass the shared configuration by hand.

Available commands:
  generate - Write the client methods (default)
  check    - Fail when the committed client is out of date
  watch    - Regenerate whenever a module changes
  am       - Show, validate or create wrapgen.toml
  version  - Show build information

Examples:
  wrapgen                                   # Generate with wrapgen.toml or defaults
  wrapgen --dir openapi/apis --import-base example.com/petstore/openapi/apis
  wrapgen check                             # CI drift check
  wrapgen watch -v                          # Regenerate on change`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			am.UseConfigFile(configPath)
		}
		if err := bindConfigFlags(cmd.Flags()); err != nil {
			return err
		}

		// A broken configuration is reported by the command itself
		jsonOutput := jsonLogs
		if cfg, err := am.Load(); err == nil {
			logger.SetTheme(cfg.Log.Theme)
			jsonOutput = jsonOutput || cfg.Log.JSON
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
	RunE: runGenerate,
}

var (
	configPath string
	jsonLogs   bool
)

// configFlags maps command flags onto configuration keys, so a flag
// overrides wrapgen.toml and WRAPGEN_* variables only when it is set.
var configFlags = map[string]string{
	"dir":         "source.dir",
	"import-base": "source.import_base",
	"output":      "output.path",
	"package":     "output.package",
	"client-type": "output.client_type",
	"hook":        "hooks.post_generate",
}

func bindConfigFlags(flags *pflag.FlagSet) error {
	v := am.GetViper()
	for name, key := range configFlags {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind --%s", name)
		}
	}
	return nil
}

// addGenerateFlags registers the configuration override flags
func addGenerateFlags(flags *pflag.FlagSet) {
	flags.String("dir", "", "Module directory (source.dir)")
	flags.String("import-base", "", "Import path of the module directory (source.import_base)")
	flags.StringP("output", "o", "", "Generated file (output.path)")
	flags.String("package", "", "Package of the generated file (output.package)")
	flags.String("client-type", "", "Client type the methods are declared on (output.client_type)")
	flags.String("hook", "", "Command run with the generated file after writing (hooks.post_generate)")
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: wrapgen.toml found from the working directory up)")

	addGenerateFlags(rootCmd.Flags())

	rootCmd.AddCommand(GenerateCmd)
	rootCmd.AddCommand(CheckCmd)
	rootCmd.AddCommand(WatchCmd)
	rootCmd.AddCommand(AmCmd)
	rootCmd.AddCommand(VersionCmd)
}

// Execute runs the wrapgen command line
func Execute() error {
	return rootCmd.Execute()
}
