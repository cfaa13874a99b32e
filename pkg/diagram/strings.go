package diagram

import (
	"fmt"
	"strings"
)

// placeholder returns the positional token substituted for the i-th string
// literal on a line. The leading underscore keeps it from ever matching the
// identifier pattern.
func placeholder(i int) string {
	return fmt.Sprintf("__str%d__", i)
}

// ExtractStrings replaces every quoted string literal on the line with a
// positional placeholder and returns the rewritten line together with the
// original literals in order. Single and double quotes are supported and
// backslash escapes inside a literal are honored. An unterminated literal
// is left in place untouched rather than treated as an error.
//
// RestoreStrings is the exact inverse given the same literal sequence.
func ExtractStrings(line string) (string, []string) {
	var (
		out      strings.Builder
		literals []string
	)

	i := 0
	for i < len(line) {
		c := line[i]
		if c != '\'' && c != '"' {
			out.WriteByte(c)
			i++
			continue
		}

		end := closingQuote(line, i)
		if end < 0 {
			// Unbalanced quote: keep the rest verbatim.
			out.WriteString(line[i:])
			break
		}

		out.WriteString(placeholder(len(literals)))
		literals = append(literals, line[i:end+1])
		i = end + 1
	}

	return out.String(), literals
}

// closingQuote returns the index of the quote closing the literal opened at
// start, or -1 when the literal is unterminated.
func closingQuote(line string, start int) int {
	quote := line[start]
	for i := start + 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return -1
}

// RestoreStrings substitutes the extracted literals back into a placeholder
// line produced by ExtractStrings.
func RestoreStrings(line string, literals []string) string {
	for i, lit := range literals {
		line = strings.Replace(line, placeholder(i), lit, 1)
	}
	return line
}
