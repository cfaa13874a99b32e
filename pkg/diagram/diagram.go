// Package diagram provides the lexical building blocks shared by every
// analyzer pass: line splitting, comment detection, string literal
// extraction, and the identifier/arrow patterns that define what counts
// as a node or an edge in flowchart source.
//
// All pattern knowledge lives here so a future grammar-based parser can
// replace the line heuristics without touching analyzer logic.
package diagram

import (
	"regexp"
	"strings"
)

// ValidDirections is the fixed set of layout directions accepted after a
// graph/flowchart header keyword.
var ValidDirections = []string{"TD", "TB", "BT", "RL", "LR"}

// keywords are reserved words that never count as node identifiers.
var keywords = map[string]bool{
	"graph":     true,
	"flowchart": true,
	"subgraph":  true,
	"end":       true,
	"td":        true,
	"tb":        true,
	"bt":        true,
	"rl":        true,
	"lr":        true,
}

var (
	// identPattern matches a node identifier: a letter followed by
	// letters, digits, underscores, colons, or hyphens.
	identPattern = `[A-Za-z][A-Za-z0-9_:-]*`

	// identRe captures identifiers not preceded by an identifier character,
	// so substrings of longer tokens are never matched.
	identRe = regexp.MustCompile(`(^|[^A-Za-z0-9_:-])(` + identPattern + `)`)

	// arrowRe matches the edge glyph family, with an optional |label| suffix.
	arrowRe = regexp.MustCompile(`(?:<?-{2,}>?|<?={2,}>?|\.-\.)(?:\|[^|]*\|)?`)

	// defRe matches an explicit node definition: an identifier immediately
	// followed by a shape-opening delimiter.
	defRe = regexp.MustCompile(`(^|[^A-Za-z0-9_:-])(` + identPattern + `)\s*[\[(]`)

	headerRe = regexp.MustCompile(`(?i)^(graph|flowchart)\s+(` + identPattern + `)`)

	subgraphRe = regexp.MustCompile(`(?i)^\s*subgraph\b`)
	endRe      = regexp.MustCompile(`(?i)^\s*end\s*$`)

	// trailingIdentRe tolerates a shape suffix so the source endpoint of
	// forms like A[label]-->B is still captured.
	trailingIdentRe = regexp.MustCompile(`(` + identPattern + `)\s*(?:\[[^\]]*\]|\([^)]*\))?\s*$`)
	leadingIdentRe  = regexp.MustCompile(`^\s*(` + identPattern + `)`)
)

// IsKeyword reports whether s is a reserved word (header keywords, subgraph
// markers, and the direction codes), compared case-insensitively.
func IsKeyword(s string) bool {
	return keywords[strings.ToLower(s)]
}

// IsDirection reports whether s is one of the valid layout directions.
func IsDirection(s string) bool {
	for _, d := range ValidDirections {
		if strings.EqualFold(s, d) {
			return true
		}
	}
	return false
}

// Header returns the direction token of a graph/flowchart header line and
// its 1-based column, or ("", 0) when the line is not a header.
func Header(line string) (direction string, column int) {
	m := headerRe.FindStringSubmatchIndex(line)
	if m == nil {
		return "", 0
	}
	return line[m[4]:m[5]], m[4] + 1
}

// IsSubgraphStart reports whether the line opens a subgraph block.
func IsSubgraphStart(line string) bool {
	return subgraphRe.MatchString(line)
}

// IsSubgraphEnd reports whether the line consists solely of the end keyword.
func IsSubgraphEnd(line string) bool {
	return endRe.MatchString(line)
}

// Identifiers returns every identifier token in the line, in order of
// appearance, including keywords.
func Identifiers(line string) []string {
	var out []string
	for _, m := range identRe.FindAllStringSubmatch(line, -1) {
		out = append(out, m[2])
	}
	return out
}

// Definitions returns identifiers explicitly defined on the line, i.e.
// those immediately followed by a shape-opening delimiter.
func Definitions(line string) []string {
	var out []string
	for _, m := range defRe.FindAllStringSubmatch(line, -1) {
		out = append(out, m[2])
	}
	return out
}

// EdgeEndpoints returns identifiers referenced as edge endpoints: the
// identifier immediately preceding and the one immediately following each
// arrow glyph on the line.
func EdgeEndpoints(line string) []string {
	var out []string
	for _, span := range arrowRe.FindAllStringIndex(line, -1) {
		before := line[:span[0]]
		after := line[span[1]:]
		if m := trailingIdentRe.FindStringSubmatch(before); m != nil {
			out = append(out, m[1])
		}
		if m := leadingIdentRe.FindStringSubmatch(after); m != nil {
			out = append(out, m[1])
		}
	}
	return out
}
