// Package models defines the shared result types produced by analyzer
// passes and consumed by the quick-fix applicator and output layer.
package models

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// IssueKind identifies the class of a reported problem. The set is closed:
// both the analyzer passes and the output layer switch exhaustively on it.
type IssueKind string

// String implements fmt.Stringer.
func (k IssueKind) String() string {
	return string(k)
}

const (
	// KindUnknownDirection flags a graph/flowchart header whose direction
	// token is not in the valid set.
	KindUnknownDirection IssueKind = "unknown-direction"
	// KindUnexpectedEnd flags an end keyword with no open subgraph.
	KindUnexpectedEnd IssueKind = "unexpected-end"
	// KindMissingEnd flags a subgraph never closed by an end keyword.
	KindMissingEnd IssueKind = "missing-end"
	// KindPossibleTypo flags an edge endpoint that is never defined but
	// sits within edit distance of a defined node.
	KindPossibleTypo IssueKind = "possible-typo"
)

// FixKind identifies the transformation a QuickFix performs.
type FixKind string

// String implements fmt.Stringer.
func (k FixKind) String() string {
	return string(k)
}

const (
	// FixReplace substitutes the first occurrence of OldText with NewText
	// on the target line.
	FixReplace FixKind = "replace"
	// FixAppendEnd appends a closing end line to the document.
	FixAppendEnd FixKind = "append-end"
	// FixDefineNode inserts a self-labelled node definition before the
	// target line.
	FixDefineNode FixKind = "define-node"
)

// QuickFix is a deterministic text edit resolving one Issue. It carries
// exactly the data needed to synthesize new source text and never
// recomputes analysis state. Fields are interpreted per Kind:
//
//   - FixReplace: Line, OldText, NewText
//   - FixAppendEnd: Line (the line to close after; informational)
//   - FixDefineNode: Line (insert before, 1-based), NodeID
type QuickFix struct {
	Kind    FixKind `json:"kind"`
	Line    int     `json:"line"`
	OldText string  `json:"old_text,omitempty"`
	NewText string  `json:"new_text,omitempty"`
	NodeID  string  `json:"node_id,omitempty"`
}

// Issue is one structural or lexical problem found in source text.
// Line and Column are 1-based. Issues are immutable values; analysis
// output order follows pass order, then line order within a pass.
type Issue struct {
	Kind        IssueKind `json:"kind"`
	Line        int       `json:"line"`
	Column      int       `json:"column"`
	Message     string    `json:"message"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Fix         *QuickFix `json:"fix,omitempty"`
}

// Fingerprint returns a stable identity hash for the issue, used to select
// a specific fix from a previously reported list.
func (i Issue) Fingerprint() string {
	h := blake3.New()
	h.Write([]byte(i.Kind))
	var loc [8]byte
	binary.BigEndian.PutUint32(loc[0:4], uint32(i.Line))
	binary.BigEndian.PutUint32(loc[4:8], uint32(i.Column))
	h.Write(loc[:])
	h.Write([]byte(i.Message))
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// Location formats the issue position as line:column.
func (i Issue) Location() string {
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasFix reports whether the issue carries an applicable quick-fix.
func (i Issue) HasFix() bool {
	return i.Fix != nil
}
