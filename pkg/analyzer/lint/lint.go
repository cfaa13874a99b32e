// Package lint is the public entry point of the analyzer: it runs every
// enabled pass over one source text and merges their outputs into a
// single ordered issue list.
package lint

import (
	"github.com/emresnme/merdia/pkg/analyzer"
	"github.com/emresnme/merdia/pkg/analyzer/direction"
	"github.com/emresnme/merdia/pkg/analyzer/nodes"
	"github.com/emresnme/merdia/pkg/analyzer/subgraph"
	"github.com/emresnme/merdia/pkg/analyzer/typo"
	"github.com/emresnme/merdia/pkg/config"
	"github.com/emresnme/merdia/pkg/diagram"
	"github.com/emresnme/merdia/pkg/models"
)

// Runner aggregates the analyzer passes. Analysis is a pure function of
// the source text: identical input always yields an identical,
// order-stable issue list. Pass order is fixed: direction, subgraph
// balance, then typo detection over the extracted node/reference sets.
// Output is concatenated in pass order and never reordered across passes;
// callers needing globally line-sorted output must sort explicitly.
type Runner struct {
	direction *direction.Analyzer
	subgraph  *subgraph.Analyzer
	extractor *nodes.Extractor
	typo      *typo.Detector

	skipDirection bool
	skipSubgraph  bool
	skipTypo      bool
}

// Option is a functional option for configuring Runner.
type Option func(*Runner)

// WithoutDirection disables the direction pass.
func WithoutDirection() Option {
	return func(r *Runner) {
		r.skipDirection = true
	}
}

// WithoutSubgraph disables the subgraph balance pass.
func WithoutSubgraph() Option {
	return func(r *Runner) {
		r.skipSubgraph = true
	}
}

// WithoutTypo disables typo detection.
func WithoutTypo() Option {
	return func(r *Runner) {
		r.skipTypo = true
	}
}

// WithTypoOptions forwards options to the typo detector.
func WithTypoOptions(opts ...typo.Option) Option {
	return func(r *Runner) {
		r.typo = typo.New(opts...)
	}
}

// New creates a runner with all passes enabled.
func New(opts ...Option) *Runner {
	r := &Runner{
		direction: direction.New(),
		subgraph:  subgraph.New(),
		extractor: nodes.New(),
		typo:      typo.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromConfig creates a runner gated and tuned by configuration.
func FromConfig(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var opts []Option
	if !cfg.Analysis.Direction {
		opts = append(opts, WithoutDirection())
	}
	if !cfg.Analysis.Subgraph {
		opts = append(opts, WithoutSubgraph())
	}
	if !cfg.Analysis.Typo {
		opts = append(opts, WithoutTypo())
	}
	opts = append(opts, WithTypoOptions(
		typo.WithMaxDistance(cfg.Typo.MaxDistance),
		typo.WithMinLength(cfg.Typo.MinLength),
	))
	return New(opts...)
}

// Analyze runs all enabled passes over the source text. Empty or
// whitespace-only input returns nil without running any pass. A panicking
// pass degrades to "no issues found" for that pass; subsequent passes
// still run.
func (r *Runner) Analyze(text string) []models.Issue {
	if diagram.IsBlank(text) {
		return nil
	}

	lines := diagram.SplitLines(text)
	var issues []models.Issue

	if !r.skipDirection {
		issues = append(issues, runPass(r.direction, lines)...)
	}
	if !r.skipSubgraph {
		issues = append(issues, runPass(r.subgraph, lines)...)
	}
	if !r.skipTypo {
		issues = append(issues, r.runTypo(lines)...)
	}

	return issues
}

// AnalyzeLines is Analyze over an already-split line sequence.
func (r *Runner) AnalyzeLines(lines []string) []models.Issue {
	return r.Analyze(diagram.JoinLines(lines))
}

// runPass executes one pass, containing any panic so a pathological line
// cannot abort the rest of the analysis.
func runPass(p analyzer.Pass, lines []string) (issues []models.Issue) {
	defer func() {
		if recover() != nil {
			issues = nil
		}
	}()
	return p.Analyze(lines)
}

// runTypo extracts the node/reference sets and runs typo detection, with
// the same panic containment as the other passes. The sets are shared
// read-only within this single call and not retained.
func (r *Runner) runTypo(lines []string) (issues []models.Issue) {
	defer func() {
		if recover() != nil {
			issues = nil
		}
	}()
	return r.typo.Detect(lines, r.extractor.Extract(lines))
}
