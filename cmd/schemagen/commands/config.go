package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/schemagen/config"
)

// ConfigCmd groups the configuration subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Create and inspect schemagen.toml",
	Long: `Create and inspect the schemagen configuration.

Configuration sources (later overrides earlier):
1. Built-in defaults
2. Config file (--config, or the nearest schemagen.toml)
3. Environment variables (SCHEMAGEN_* prefix, e.g. SCHEMAGEN_OUTPUT_DIR)

Examples:
  schemagen config init            # Write schemagen.toml with defaults
  schemagen config show            # Effective settings and their sources
  schemagen config show --toml     # Effective configuration as TOML
  schemagen config validate        # Check names and values`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default schemagen.toml",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	RunE:  runConfigValidate,
}

var (
	configForce bool
	configTOML  bool
)

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file, keeping a backup")
	configShowCmd.Flags().BoolVar(&configTOML, "toml", false, "Print the effective configuration as TOML")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := ConfigPath
	if path == "" {
		path = config.DefaultConfigFile
	}
	if err := config.Init(path, configForce); err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %s", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if configTOML {
		cfg, err := config.Load(ConfigPath)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	settings, err := config.Introspect(ConfigPath)
	if err != nil {
		return err
	}
	table := pterm.TableData{{"Key", "Value", "Source", "Origin"}}
	for _, s := range settings {
		table = append(table, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.Origin})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return err
	}
	source := cfg.Path
	if source == "" {
		source = "built-in defaults"
	}
	pterm.Success.Printfln("Configuration is valid (%s)", source)
	return nil
}
