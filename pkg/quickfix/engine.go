package quickfix

import (
	"github.com/emresnme/merdia/pkg/models"
)

// Analyzer is the slice of the lint runner the engine needs. It exists so
// the engine does not import the aggregator package directly.
type Analyzer interface {
	Analyze(text string) []models.Issue
}

// maxRounds caps iterative fixing so a fix that never resolves its issue
// cannot loop forever.
const maxRounds = 32

// Engine selects and applies quick-fixes for a source text, re-running
// analysis between applications so later fixes always see fresh line
// numbers.
type Engine struct {
	analyzer Analyzer
}

// NewEngine creates a fix engine backed by the given analyzer.
func NewEngine(a Analyzer) *Engine {
	return &Engine{analyzer: a}
}

// ApplyFirst applies the first offered fix in the current issue list.
// It returns the new text, the issue that was fixed, and whether any fix
// was applied.
func (e *Engine) ApplyFirst(text string) (string, *models.Issue, bool) {
	for _, issue := range e.analyzer.Analyze(text) {
		if issue.Fix == nil {
			continue
		}
		fixed := issue
		return ApplyToText(text, *issue.Fix), &fixed, true
	}
	return text, nil, false
}

// ApplyByID applies the fix belonging to the issue with the given
// fingerprint. It reports false when no current issue matches or the
// matching issue carries no fix.
func (e *Engine) ApplyByID(text, id string) (string, *models.Issue, bool) {
	for _, issue := range e.analyzer.Analyze(text) {
		if issue.Fingerprint() != id {
			continue
		}
		if issue.Fix == nil {
			return text, nil, false
		}
		fixed := issue
		return ApplyToText(text, *issue.Fix), &fixed, true
	}
	return text, nil, false
}

// ApplyAll repeatedly applies the first available fix and re-analyzes
// until no fixable issues remain or the round cap is hit. It returns the
// final text and the issues fixed along the way, in application order.
func (e *Engine) ApplyAll(text string) (string, []models.Issue) {
	var applied []models.Issue

	for i := 0; i < maxRounds; i++ {
		next, issue, ok := e.ApplyFirst(text)
		if !ok {
			break
		}
		if next == text {
			// Stale fix made no progress; stop rather than spin.
			break
		}
		applied = append(applied, *issue)
		text = next
	}

	return text, applied
}
