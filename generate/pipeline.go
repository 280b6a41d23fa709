// Package generate runs the whole pipeline: token stream to IR, field
// preprocessing, emission and writing.
package generate

import (
	"time"

	"github.com/teranos/schemagen/annotation"
	"github.com/teranos/schemagen/astbuilder"
	"github.com/teranos/schemagen/config"
	"github.com/teranos/schemagen/emit"
	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/logger"
	"github.com/teranos/schemagen/output"
	"github.com/teranos/schemagen/token"
	"github.com/teranos/schemagen/transform"
)

// Pipeline is a configured generator. It holds no per-run state, so Run may
// be called repeatedly; runs must not overlap.
type Pipeline struct {
	cfg          *config.Config
	chain        transform.Chain
	builder      *astbuilder.Builder
	orchestrator *output.Orchestrator
}

// Result describes one generation run.
type Result struct {
	Files        []output.File
	Namespaces   int
	Records      int
	Enums        int
	Preprocessed int
	Duration     time.Duration
}

// New builds a Pipeline from cfg.
func New(cfg *config.Config) (*Pipeline, error) {
	chain, err := transform.Build(cfg.Transformers.Order, cfg.TransformOptions())
	if err != nil {
		return nil, err
	}
	records, err := emit.RecordWriters(cfg.Writers.Records)
	if err != nil {
		return nil, err
	}
	enums, err := emit.EnumWriters(cfg.Writers.Enums)
	if err != nil {
		return nil, err
	}
	cache, err := annotation.NewCache(cfg.Tokens.CacheSize)
	if err != nil {
		return nil, err
	}

	emitter := emit.New(chain, cfg.Output.Readonly)
	return &Pipeline{
		cfg:          cfg,
		chain:        chain,
		builder:      astbuilder.New(cache),
		orchestrator: output.New(emitter, records, enums, chain.Files(), cfg.OutputOptions()),
	}, nil
}

// Run generates every unit for tokens without touching the filesystem.
func (p *Pipeline) Run(tokens []token.Token) (*Result, error) {
	start := time.Now()

	root, err := p.builder.Build(tokens)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build IR")
	}
	preprocessed := p.chain.Preprocess(root)
	files := p.orchestrator.Render(root)

	res := &Result{
		Files:        files,
		Namespaces:   len(root.Namespaces()),
		Records:      len(root.Records()),
		Enums:        len(root.Enums()),
		Preprocessed: preprocessed,
		Duration:     time.Since(start),
	}
	logger.Infow("Generation complete",
		logger.FieldUnit, len(files),
		logger.FieldRecord, res.Records,
		logger.FieldEnum, res.Enums,
		logger.FieldDurationMS, res.Duration.Milliseconds())
	return res, nil
}

// RunFiles loads token stream files, in order, and runs the pipeline.
func (p *Pipeline) RunFiles(paths ...string) (*Result, error) {
	stream, err := token.Load(paths...)
	if err != nil {
		return nil, err
	}
	return p.Run(stream.Tokens)
}

// Generate runs the pipeline over paths and writes the result to dir.
func (p *Pipeline) Generate(dir string, paths ...string) (*Result, error) {
	res, err := p.RunFiles(paths...)
	if err != nil {
		return nil, err
	}
	if err := output.WriteFiles(dir, res.Files); err != nil {
		return nil, err
	}
	return res, nil
}

// TokenFiles returns paths, or the configured token files when paths is empty.
func (p *Pipeline) TokenFiles(paths []string) []string {
	if len(paths) > 0 {
		return paths
	}
	return p.cfg.Tokens.Files
}
