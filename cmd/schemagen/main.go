package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/schemagen/cmd/schemagen/commands"
	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "schemagen",
	Short: "Generate TypeScript interfaces and zod schemas from PHP class tokens",
	Long: `schemagen turns the token stream produced by the PHP discovery layer into
TypeScript: a public interface, a wire (Encoded) interface and a zod schema
for every record, and a literal union plus schema for every enum.

Each PHP namespace becomes one output file; references across namespaces
become relative imports.

Available commands:
  generate - Generate TypeScript files from token streams
  check    - Verify generated files are up to date
  watch    - Regenerate whenever token files or the config change
  config   - Create and inspect schemagen.toml
  version  - Show version information

Examples:
  schemagen generate -t build/tokens.json          # Write to output.dir
  schemagen generate -t build/tokens.json --stdout # Print every unit
  schemagen check -t build/tokens.json             # Fail in CI when stale
  schemagen watch -t build/tokens.json             # Regenerate on change`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugw("Logger ready", "level", logger.LevelName(verbosity))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().StringVarP(&commands.ConfigPath, "config", "c", "", "Config file (default: nearest schemagen.toml)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(err)
		os.Exit(commands.ExitCode(err))
	}
}
