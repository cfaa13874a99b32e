// Package typo flags edge endpoints that are never defined but sit within
// a small edit distance of a defined node, suggesting a misspelled
// reference.
package typo

import (
	"fmt"
	"strings"

	"github.com/emresnme/merdia/pkg/analyzer"
	"github.com/emresnme/merdia/pkg/analyzer/nodes"
	"github.com/emresnme/merdia/pkg/diagram"
	"github.com/emresnme/merdia/pkg/models"
)

const (
	defaultMaxDistance = 2
	defaultMinLength   = 2
)

// Detector reports probable reference typos using Levenshtein distance.
type Detector struct {
	maxDistance int
	minLength   int
	extractor   *nodes.Extractor
}

// Option is a functional option for configuring Detector.
type Option func(*Detector)

// WithMaxDistance sets the maximum edit distance treated as a probable
// typo. Values below 1 are ignored.
func WithMaxDistance(d int) Option {
	return func(t *Detector) {
		if d >= 1 {
			t.maxDistance = d
		}
	}
}

// WithMinLength sets the minimum identifier length considered. Shorter
// references produce too many false positives to be useful.
func WithMinLength(n int) Option {
	return func(t *Detector) {
		if n >= 1 {
			t.minLength = n
		}
	}
}

// New creates a typo detector with default thresholds.
func New(opts ...Option) *Detector {
	t := &Detector{
		maxDistance: defaultMaxDistance,
		minLength:   defaultMinLength,
		extractor:   nodes.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name implements analyzer.Pass.
func (t *Detector) Name() string { return "typo" }

// Analyze extracts the node and reference sets itself and delegates to
// Detect. It exists so the detector can run standalone as a Pass.
func (t *Detector) Analyze(lines []string) []models.Issue {
	return t.Detect(lines, t.extractor.Extract(lines))
}

// Compile-time check that Detector implements analyzer.Pass.
var _ analyzer.Pass = (*Detector)(nil)

// Detect compares every referenced-but-undefined identifier against the
// defined nodes, case-insensitively. A reference within maxDistance edits
// of a node, with a length difference no greater than maxDistance, is
// flagged. The first qualifying candidate wins; this is deliberately not a
// best-match search.
func (t *Detector) Detect(lines []string, g *nodes.Graph) []models.Issue {
	var issues []models.Issue

	for _, ref := range g.Refs.Items() {
		if len(ref) < t.minLength || g.Nodes.Has(ref) {
			continue
		}

		candidate, ok := t.nearest(ref, g.Nodes)
		if !ok {
			continue
		}

		line, col := locate(lines, ref)
		issues = append(issues, models.Issue{
			Kind:        models.KindPossibleTypo,
			Line:        line,
			Column:      col,
			Message:     fmt.Sprintf("%q is never defined, did you mean %q?", ref, candidate),
			Suggestions: []string{candidate},
			Fix: &models.QuickFix{
				Kind:   models.FixDefineNode,
				Line:   line,
				NodeID: ref,
			},
		})
	}

	return issues
}

// nearest returns the first defined node within the edit-distance
// threshold of ref.
func (t *Detector) nearest(ref string, defined *nodes.Set) (string, bool) {
	lowerRef := strings.ToLower(ref)
	for _, node := range defined.Items() {
		if abs(len(ref)-len(node)) > t.maxDistance {
			continue
		}
		if Levenshtein(lowerRef, strings.ToLower(node)) <= t.maxDistance {
			return node, true
		}
	}
	return "", false
}

// locate returns the 1-based line and column of the first occurrence of
// id in the document, falling back to 1:1 when absent.
func locate(lines []string, id string) (int, int) {
	for idx, line := range lines {
		if diagram.IsComment(line) {
			continue
		}
		if col := strings.Index(line, id); col >= 0 {
			return idx + 1, col + 1
		}
	}
	return 1, 1
}
