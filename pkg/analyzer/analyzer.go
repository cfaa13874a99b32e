// Package analyzer defines the contract shared by all line-oriented
// analyzer passes.
package analyzer

import "github.com/emresnme/merdia/pkg/models"

// Pass is the interface implemented by every analyzer pass. A pass is a
// pure function of the line sequence: it never mutates its input, never
// observes another pass's output, and yields issues in line order.
type Pass interface {
	// Name returns a short stable identifier for the pass.
	Name() string

	// Analyze inspects the full line sequence and returns any issues
	// found, ordered by line.
	Analyze(lines []string) []models.Issue
}
