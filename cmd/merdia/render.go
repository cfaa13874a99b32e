package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/emresnme/merdia/internal/render"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a diagram file via the external renderer (mmdc)",
		ArgsUsage: "<file>",
		Action:    runRenderCmd,
	}
}

// runRenderCmd feeds the raw source text to the external renderer. Lint
// results never gate rendering; the analyzer is purely advisory.
func runRenderCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("render expects exactly one file argument")
	}
	path := c.Args().First()

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	renderer := render.NewMermaidCLI()
	svg, err := renderer.Render(c.Context, string(content))
	if err != nil {
		return err
	}

	out := c.String("output")
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".svg"
	}
	if err := os.WriteFile(out, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	color.Green("Rendered %s to %s", path, out)
	return nil
}
