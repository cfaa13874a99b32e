// Package quickfix applies machine-generated text edits back onto
// flowchart source. Application is deliberately dumb: it never
// re-validates, and a fix whose target has gone stale is a silent no-op.
// Callers re-run analysis on the new text to observe whether the fix
// resolved the issue.
package quickfix

import (
	"strings"

	"github.com/emresnme/merdia/pkg/diagram"
	"github.com/emresnme/merdia/pkg/models"
)

// indent is the fixed indentation used for inserted node definitions.
const indent = "    "

// Apply produces a new line sequence with the fix applied. The input is
// never mutated. A fix targeting a line index that is out of range, or a
// Replace whose old text no longer occurs on the target line, returns a
// copy of the input unchanged; concurrent edits are expected and are not
// an error.
func Apply(lines []string, fix models.QuickFix) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	switch fix.Kind {
	case models.FixReplace:
		idx := fix.Line - 1
		if idx < 0 || idx >= len(out) {
			return out
		}
		out[idx] = strings.Replace(out[idx], fix.OldText, fix.NewText, 1)
		return out

	case models.FixAppendEnd:
		return append(out, "end")

	case models.FixDefineNode:
		idx := fix.Line - 1
		if idx < 0 {
			idx = 0
		}
		if idx > len(out) {
			return out
		}
		def := indent + fix.NodeID + "[" + fix.NodeID + "]"
		out = append(out, "")
		copy(out[idx+1:], out[idx:])
		out[idx] = def
		return out
	}

	return out
}

// ApplyToText is Apply over a full source string.
func ApplyToText(text string, fix models.QuickFix) string {
	return diagram.JoinLines(Apply(diagram.SplitLines(text), fix))
}
