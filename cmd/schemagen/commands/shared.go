// Package commands holds the schemagen subcommands.
package commands

import (
	"github.com/pterm/pterm"

	"github.com/teranos/schemagen/config"
	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/generate"
)

// ConfigPath is the --config flag shared by every command.
var ConfigPath string

// Exit codes.
const (
	ExitFailure   = 1
	ExitOutOfDate = 2
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if errors.IsOutOfDate(err) {
		return ExitOutOfDate
	}
	return ExitFailure
}

// PrintError reports err and any hints attached to it.
func PrintError(err error) {
	pterm.Error.Println(err.Error())
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.Println(hint)
	}
}

func loadPipeline() (*config.Config, *generate.Pipeline, error) {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	p, err := generate.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

// outputDir returns flag, or the configured output directory.
func outputDir(cfg *config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Output.Dir
}

func tokenFiles(p *generate.Pipeline, flag []string) ([]string, error) {
	files := p.TokenFiles(flag)
	if len(files) == 0 {
		return nil, errors.WithHint(
			errors.New("no token files given"),
			"pass --tokens or set tokens.files in schemagen.toml")
	}
	return files, nil
}
