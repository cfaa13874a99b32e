package diagram

import (
	"path/filepath"
	"strings"
)

// CommentMarker starts a comment line in flowchart source.
const CommentMarker = "%%"

// sourceExtensions are the file extensions treated as flowchart source.
var sourceExtensions = map[string]bool{
	".mmd":     true,
	".mermaid": true,
}

// IsSourceFile reports whether path has a flowchart source extension.
func IsSourceFile(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// SplitLines splits source text into lines with universal newline
// handling. Both \r\n and \n terminate a line.
func SplitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

// JoinLines is the inverse of SplitLines using \n terminators.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// IsComment reports whether the line, after trimming leading whitespace,
// starts with the comment marker.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), CommentMarker)
}

// IsBlank reports whether text is empty or contains only whitespace.
// It applies equally to a single line or to a whole source buffer.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
