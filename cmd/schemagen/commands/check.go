package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	checkTokens []string
	checkOutput string
)

// CheckCmd fails when the generated files on disk are stale.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify generated files are up to date",
	Long: `Generate into a temporary directory and compare the result with the output
directory. Exits with status 2 when any file differs or is missing; files
the generator does not produce are ignored.

Examples:
  schemagen check -t build/tokens.json
  schemagen check -o web/src/generated`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringSliceVarP(&checkTokens, "tokens", "t", nil, "Token stream files (default: tokens.files)")
	CheckCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Output directory to verify (default: output.dir)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, p, err := loadPipeline()
	if err != nil {
		return err
	}
	files, err := tokenFiles(p, checkTokens)
	if err != nil {
		return err
	}

	dir := outputDir(cfg, checkOutput)
	res, err := p.Check(dir, files...)
	if err != nil {
		return err
	}
	if res.UpToDate {
		pterm.Success.Printfln("Generated files in %s are up to date", dir)
		return nil
	}
	for _, path := range res.Differ {
		pterm.Warning.Printfln("differs: %s", path)
	}
	for _, path := range res.Missing {
		pterm.Warning.Printfln("missing: %s", path)
	}
	return res.Err()
}
