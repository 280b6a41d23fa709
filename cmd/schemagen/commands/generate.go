package commands

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	generateTokens []string
	generateOutput string
	generateStdout bool
)

// GenerateCmd writes every unit for the given token streams.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TypeScript files from token streams",
	Long: `Generate TypeScript interfaces and zod schemas from one or more token
stream files (JSON, YAML or TOML). Token files are read in order and their
tokens concatenated.

Examples:
  schemagen generate -t build/tokens.json
  schemagen generate -t models.json -t enums.yaml -o web/src/generated
  schemagen generate --stdout`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringSliceVarP(&generateTokens, "tokens", "t", nil, "Token stream files (default: tokens.files)")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default: output.dir)")
	GenerateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Print units instead of writing them")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, p, err := loadPipeline()
	if err != nil {
		return err
	}
	files, err := tokenFiles(p, generateTokens)
	if err != nil {
		return err
	}

	if generateStdout {
		res, err := p.RunFiles(files...)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, f := range res.Files {
			fmt.Fprintf(out, "// Unit: %s\n%s\n", f.Path, f.Content)
		}
		return nil
	}

	dir := outputDir(cfg, generateOutput)
	res, err := p.Generate(dir, files...)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("Generated %d files in %s (%d records, %d enums, %s)",
		len(res.Files), dir, res.Records, res.Enums, res.Duration.Round(time.Millisecond))
	return nil
}
