// Package subgraph validates that every subgraph block is closed by a
// matching end keyword.
package subgraph

import (
	"fmt"

	"github.com/emresnme/merdia/pkg/analyzer"
	"github.com/emresnme/merdia/pkg/diagram"
	"github.com/emresnme/merdia/pkg/models"
)

// Analyzer tracks subgraph/end balance with a stack of line numbers.
// Every subgraph opens one frame and every end closes the innermost open
// frame; there is no lookahead.
type Analyzer struct{}

// Compile-time check that Analyzer implements analyzer.Pass.
var _ analyzer.Pass = (*Analyzer)(nil)

// New creates a subgraph balance analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Name implements analyzer.Pass.
func (a *Analyzer) Name() string { return "subgraph" }

// Analyze emits UnexpectedEnd for each end with no open subgraph and
// MissingEnd for each subgraph still open at end of document. MissingEnd
// carries an AppendEnd fix; UnexpectedEnd carries none, since which
// subgraph was intended is ambiguous.
func (a *Analyzer) Analyze(lines []string) []models.Issue {
	var issues []models.Issue
	var open []int // 1-based line numbers of unclosed subgraph lines

	for idx, line := range lines {
		if diagram.IsComment(line) {
			continue
		}
		switch {
		case diagram.IsSubgraphStart(line):
			open = append(open, idx+1)
		case diagram.IsSubgraphEnd(line):
			if len(open) == 0 {
				issues = append(issues, models.Issue{
					Kind:    models.KindUnexpectedEnd,
					Line:    idx + 1,
					Column:  1,
					Message: "end without a matching subgraph",
				})
				continue
			}
			open = open[:len(open)-1]
		}
	}

	for _, lineNum := range open {
		issues = append(issues, models.Issue{
			Kind:    models.KindMissingEnd,
			Line:    lineNum,
			Column:  1,
			Message: fmt.Sprintf("subgraph opened on line %d is never closed", lineNum),
			Fix: &models.QuickFix{
				Kind: models.FixAppendEnd,
				Line: len(lines),
			},
		})
	}

	return issues
}
