package fixer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/phplex"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// FileResult contains the outcome of fixing one file's content.
type FileResult struct {
	// Path is the file path.
	Path string

	// Original is the input content.
	Original []byte

	// Fixed is the rewritten content (equal to Original when nothing changed).
	Fixed []byte

	// Run is the orchestrator change log; nil if tokenization failed.
	Run *RunResult
}

// Changed reports whether the content was rewritten.
func (r *FileResult) Changed() bool {
	return r.Run != nil && r.Run.Changed() && string(r.Original) != string(r.Fixed)
}

// Engine tokenizes content and runs a resolved fixer set over it.
// It is safe for concurrent use once built.
type Engine struct {
	resolution   *Resolution
	lexOpts      phplex.Options
	orchestrator *Orchestrator
	signature    string
}

// NewEngine resolves and configures the fixers selected by cfg.
func NewEngine(registry *Registry, cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	res, err := ResolveFixers(registry, cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		resolution:   res,
		lexOpts:      cfg.Tokenizer,
		orchestrator: NewOrchestrator(cfg.EffectiveMaxPasses()),
		signature:    signature(res, cfg),
	}, nil
}

// Resolution returns the fixers this engine runs.
func (e *Engine) Resolution() *Resolution {
	return e.resolution
}

// Signature identifies the fixer set, options, tokenizer settings and pass
// cap. Two engines with equal signatures produce equal output.
func (e *Engine) Signature() string {
	return e.signature
}

// FixContent runs the fixers over content. On a *FailureError or
// *NonConvergenceError the returned result is still populated with the
// change log, but Fixed must not be written.
func (e *Engine) FixContent(ctx context.Context, path string, content []byte) (*FileResult, error) {
	result := &FileResult{Path: path, Original: content, Fixed: content}

	stream, err := tokens.FromText(string(content), e.lexOpts)
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}

	run, err := e.orchestrator.Run(ctx, &FileContext{Path: path}, stream, e.resolution.Fixers)
	result.Run = run
	if err != nil {
		return result, err
	}

	if run.Changed() {
		result.Fixed = []byte(stream.GenerateCode())
	}
	return result, nil
}

type signatureInput struct {
	Fixers    []signatureFixer `json:"fixers"`
	Tokenizer phplex.Options   `json:"tokenizer"`
	MaxPasses int              `json:"max_passes"`
}

type signatureFixer struct {
	Name    string         `json:"name"`
	Options map[string]any `json:"options,omitempty"`
}

// signature hashes a canonical JSON rendering; encoding/json sorts map keys.
func signature(res *Resolution, cfg *config.Config) string {
	in := signatureInput{Tokenizer: cfg.Tokenizer, MaxPasses: cfg.EffectiveMaxPasses()}
	for _, f := range res.Fixers {
		sf := signatureFixer{Name: f.Name()}
		if c, ok := f.(interface{ Values() Values }); ok {
			sf.Options = c.Values()
		}
		in.Fixers = append(in.Fixers, sf)
	}
	data, err := json.Marshal(in)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
