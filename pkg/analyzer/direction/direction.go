// Package direction validates the layout direction token on graph and
// flowchart header lines.
package direction

import (
	"fmt"
	"strings"

	"github.com/emresnme/merdia/pkg/analyzer"
	"github.com/emresnme/merdia/pkg/diagram"
	"github.com/emresnme/merdia/pkg/models"
)

// Analyzer checks header lines for unknown direction tokens.
type Analyzer struct {
	valid []string
}

// Compile-time check that Analyzer implements analyzer.Pass.
var _ analyzer.Pass = (*Analyzer)(nil)

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithValidDirections overrides the accepted direction set. Intended for
// dialects that restrict the default set; an empty slice is ignored.
func WithValidDirections(dirs []string) Option {
	return func(a *Analyzer) {
		if len(dirs) > 0 {
			a.valid = dirs
		}
	}
}

// New creates a direction analyzer with default options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{valid: diagram.ValidDirections}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name implements analyzer.Pass.
func (a *Analyzer) Name() string { return "direction" }

// Analyze flags header lines whose direction token is not in the valid
// set. Each issue suggests the full valid set and carries a Replace fix
// targeting the first valid direction.
func (a *Analyzer) Analyze(lines []string) []models.Issue {
	var issues []models.Issue

	for idx, line := range lines {
		if diagram.IsComment(line) {
			continue
		}
		dir, col := diagram.Header(line)
		if dir == "" || a.isValid(dir) {
			continue
		}

		issues = append(issues, models.Issue{
			Kind:        models.KindUnknownDirection,
			Line:        idx + 1,
			Column:      col,
			Message:     fmt.Sprintf("unknown direction %q, expected one of %s", dir, strings.Join(a.valid, ", ")),
			Suggestions: append([]string(nil), a.valid...),
			Fix: &models.QuickFix{
				Kind:    models.FixReplace,
				Line:    idx + 1,
				OldText: dir,
				NewText: a.valid[0],
			},
		})
	}

	return issues
}

func (a *Analyzer) isValid(dir string) bool {
	for _, d := range a.valid {
		if strings.EqualFold(d, dir) {
			return true
		}
	}
	return false
}
