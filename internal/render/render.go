// Package render is the boundary to the external diagram renderer. The
// analyzer never inspects rendering internals; the renderer consumes the
// raw source text, independent of lint results.
package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Renderer turns flowchart source text into a drawn diagram.
type Renderer interface {
	// Render draws the source text and returns the image bytes.
	Render(ctx context.Context, source string) ([]byte, error)
}

// MermaidCLI renders via the mermaid-cli (mmdc) executable.
type MermaidCLI struct {
	// Binary is the mmdc executable name or path. Defaults to "mmdc".
	Binary string
}

// Compile-time check that MermaidCLI implements Renderer.
var _ Renderer = (*MermaidCLI)(nil)

// NewMermaidCLI creates a renderer backed by the mmdc executable.
func NewMermaidCLI() *MermaidCLI {
	return &MermaidCLI{Binary: "mmdc"}
}

// Render writes the source to a temp file, invokes mmdc, and returns the
// generated SVG bytes.
func (r *MermaidCLI) Render(ctx context.Context, source string) ([]byte, error) {
	bin := r.Binary
	if bin == "" {
		bin = "mmdc"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("renderer %s not found: %w", bin, err)
	}

	dir, err := os.MkdirTemp("", "merdia-render")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "diagram.mmd")
	out := filepath.Join(dir, "diagram.svg")
	if err := os.WriteFile(in, []byte(source), 0o600); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, bin, "-i", in, "-o", out)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("render failed: %w: %s", err, output)
	}

	return os.ReadFile(out)
}
