package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/am"
	"github.com/teranos/wrapgen/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage wrapgen configuration",
	Long: `Display and manage wrapgen configuration settings.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (WRAPGEN_* prefix, e.g. WRAPGEN_OUTPUT_PATH)
3. Project config (wrapgen.toml, searched from the working directory up)
4. Default values

Examples:
  wrapgen am show                    # Show effective configuration
  wrapgen am show --format yaml      # Show configuration as YAML
  wrapgen am show --sources          # Show where each value came from
  wrapgen am validate                # Validate current configuration
  wrapgen am init --import-base example.com/petstore/openapi/apis`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective wrapgen configuration from all sources",
	RunE:  runAmShow,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate that the current wrapgen configuration is valid",
	RunE:  runAmValidate,
}

var amInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a wrapgen.toml with the default settings",
	Long: `Write wrapgen.toml to the working directory with every setting at its
default. An existing file is kept unless --force is given; it is then
rotated to wrapgen.toml.back1 first.`,
	RunE: runAmInit,
}

var (
	configFormat string
	showSources  bool
	initDir      string
	initForce    bool
	initBase     string
)

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, yaml")
	amShowCmd.Flags().BoolVar(&showSources, "sources", false, "Show the source of every setting")

	amInitCmd.Flags().StringVar(&initDir, "directory", ".", "Directory to write wrapgen.toml to")
	amInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing wrapgen.toml")
	amInitCmd.Flags().StringVar(&initBase, "import-base", "", "Import path of the module directory")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amInitCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	if showSources {
		return showSettingSources()
	}

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := cfg.Render(configFormat)
	if err != nil {
		return err
	}

	fmt.Printf("# wrapgen configuration\n%s", string(data))
	return nil
}

func showSettingSources() error {
	settings, err := am.Introspect()
	if err != nil {
		return errors.Wrap(err, "failed to inspect config")
	}

	data := pterm.TableData{{"Key", "Value", "Source"}}
	for _, s := range settings {
		source := string(s.Source)
		if s.SourcePath != "" {
			source += " (" + s.SourcePath + ")"
		}
		data = append(data, []string{s.Key, fmt.Sprint(s.Value), source})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	if path := am.ConfigFileUsed(); path != "" {
		unknown, err := am.UnknownKeys(path)
		if err != nil {
			return err
		}
		for _, key := range unknown {
			pterm.Warning.Printf("%s: unknown setting %s is ignored\n", path, key)
		}
		pterm.Success.Printf("Configuration is valid (%s)\n", path)
	} else {
		pterm.Success.Println("Configuration is valid (defaults and environment only)")
	}
	return nil
}

func runAmInit(cmd *cobra.Command, args []string) error {
	cfg := am.Default()
	cfg.Source.ImportBase = initBase

	path, err := am.WriteProjectConfig(initDir, cfg, initForce)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Wrote %s\n", path)
	if initBase == "" {
		pterm.Warning.Println("source.import_base is empty; set it before running wrapgen generate")
	}
	return nil
}
