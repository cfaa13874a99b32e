package diagram

import (
	"reflect"
	"testing"
)

func TestExtractStrings(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantLine string
		wantLits []string
	}{
		{
			name:     "no strings",
			line:     "A-->B",
			wantLine: "A-->B",
			wantLits: nil,
		},
		{
			name:     "double quoted",
			line:     `A["hello"]`,
			wantLine: "A[__str0__]",
			wantLits: []string{`"hello"`},
		},
		{
			name:     "single quoted",
			line:     `A['hello']`,
			wantLine: "A[__str0__]",
			wantLits: []string{`'hello'`},
		},
		{
			name:     "multiple literals",
			line:     `A["one"]-->B['two']`,
			wantLine: "A[__str0__]-->B[__str1__]",
			wantLits: []string{`"one"`, `'two'`},
		},
		{
			name:     "escaped quote inside",
			line:     `A["say \"hi\""]`,
			wantLine: "A[__str0__]",
			wantLits: []string{`"say \"hi\""`},
		},
		{
			name:     "unterminated literal is left alone",
			line:     `A["oops`,
			wantLine: `A["oops`,
			wantLits: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLine, gotLits := ExtractStrings(tt.line)
			if gotLine != tt.wantLine {
				t.Errorf("line = %q, want %q", gotLine, tt.wantLine)
			}
			if !reflect.DeepEqual(gotLits, tt.wantLits) {
				t.Errorf("literals = %v, want %v", gotLits, tt.wantLits)
			}
		})
	}
}

func TestRestoreStringsRoundTrip(t *testing.T) {
	lines := []string{
		`A["label"]-->B['other']`,
		`mixed "one" and 'two' and "three"`,
		`no strings at all`,
		`escaped "a \"b\" c" end`,
	}

	for _, line := range lines {
		placeholder, lits := ExtractStrings(line)
		if got := RestoreStrings(placeholder, lits); got != line {
			t.Errorf("round trip of %q = %q", line, got)
		}
	}
}

func TestExtractStringsMasksArrowContent(t *testing.T) {
	line := `A["x-->y"]-->B`
	masked, _ := ExtractStrings(line)
	endpoints := EdgeEndpoints(masked)
	if !reflect.DeepEqual(endpoints, []string{"A", "B"}) {
		t.Errorf("endpoints after masking = %v, want [A B]", endpoints)
	}
}
