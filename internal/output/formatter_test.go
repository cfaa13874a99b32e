package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"", FormatText},
		{"invalid", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseFormat(tt.input)
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter(FormatText, "", true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	defer f.Close()

	if f.format != FormatText {
		t.Errorf("format = %q, want %q", f.format, FormatText)
	}
	if !f.colored {
		t.Error("colored = false, want true")
	}
	if f.file != nil {
		t.Error("file should be nil for stdout")
	}
	if f.Writer() == nil {
		t.Error("Writer() should not be nil")
	}
}

func TestNewFormatterWithFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.json")

	f, err := NewFormatter(FormatJSON, outputPath, true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}

	if f.file == nil {
		t.Error("file should not be nil for file output")
	}
	if f.colored {
		t.Error("colored should be false when writing to file")
	}

	if err := f.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		t.Error("output file should exist")
	}
}

func TestNewFormatterInvalidPath(t *testing.T) {
	_, err := NewFormatter(FormatText, "/nonexistent/directory/report.txt", false)
	if err == nil {
		t.Error("NewFormatter() should error for invalid path")
	}
}

func lintTable() *Table {
	return NewTable(
		"Lint Results",
		[]string{"Location", "Kind", "Message"},
		[][]string{
			{"flow.mmd:1:7", "unknown-direction", `"XY" is not a valid direction`},
			{"flow.mmd:4:9", "possible-typo", `"Strat" is never defined`},
		},
		[]string{"Files: 1", "Issues: 2", ""},
		nil,
	)
}

func TestTableRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := lintTable().RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Lint Results", "LOCATION", "flow.mmd:1:7", "unknown-direction", "Issues: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderText() output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRenderTextNoTitle(t *testing.T) {
	table := NewTable("", []string{"Location", "Kind"}, [][]string{{"a.mmd:1:1", "missing-end"}}, nil, nil)

	var buf bytes.Buffer
	if err := table.RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}
	if strings.Contains(buf.String(), "=") {
		t.Error("untitled table should not render a title underline")
	}
}

func TestTableRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := lintTable().RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"## Lint Results",
		"| Location | Kind | Message |",
		"| --- | --- | --- |",
		"| flow.mmd:1:7 | unknown-direction |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderMarkdown() output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRenderData(t *testing.T) {
	rows := lintTable().RenderData().([]map[string]string)
	if len(rows) != 2 {
		t.Fatalf("RenderData() returned %d rows, want 2", len(rows))
	}
	if rows[0]["Location"] != "flow.mmd:1:7" {
		t.Errorf("rows[0][Location] = %q", rows[0]["Location"])
	}
	if rows[1]["Kind"] != "possible-typo" {
		t.Errorf("rows[1][Kind] = %q", rows[1]["Kind"])
	}
}

func TestTableRenderDataPrefersStructured(t *testing.T) {
	type report struct {
		Path   string `json:"path"`
		Issues int    `json:"issues"`
	}
	data := []report{{Path: "flow.mmd", Issues: 2}}
	table := NewTable("Lint Results", []string{"Location"}, nil, nil, data)

	got, ok := table.RenderData().([]report)
	if !ok {
		t.Fatalf("RenderData() = %T, want []report", table.RenderData())
	}
	if got[0].Path != "flow.mmd" {
		t.Errorf("RenderData()[0].Path = %q", got[0].Path)
	}
}

func TestFormatterOutputJSON(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.json")
	f, err := NewFormatter(FormatJSON, outputPath, false)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}

	if err := f.Output(lintTable()); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}

	var rows []map[string]string
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("JSON output has %d rows, want 2", len(rows))
	}
}

func TestFormatterOutputMarkdownToFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.md")
	f, err := NewFormatter(FormatMarkdown, outputPath, false)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}

	if err := f.Output(lintTable()); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "## Lint Results") {
		t.Errorf("markdown output missing title:\n%s", data)
	}
}
