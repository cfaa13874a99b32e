package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/emresnme/merdia/internal/cache"
	"github.com/emresnme/merdia/internal/scanner"
	"github.com/emresnme/merdia/pkg/analyzer/lint"
	"github.com/emresnme/merdia/pkg/models"
	"github.com/emresnme/merdia/pkg/quickfix"
)

func fixCmd() *cli.Command {
	return &cli.Command{
		Name:      "fix",
		Usage:     "Apply suggested quick-fixes to diagram files",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Apply every available fix, re-analyzing between applications",
			},
			&cli.StringFlag{
				Name:  "id",
				Usage: "Apply only the fix with this fingerprint (see lint output)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the fixed text instead of writing files",
			},
		},
		Action: runFixCmd,
	}
}

func runFixCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	scan := scanner.New(cfg)
	files, err := scan.ScanPaths(getPaths(c))
	if err != nil {
		return fmt.Errorf("scan paths: %w", err)
	}
	if len(files) == 0 {
		color.Yellow("No diagram files found")
		return nil
	}

	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cfg.Cache.Enabled)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	engine := quickfix.NewEngine(lint.FromConfig(cfg))
	totalApplied := 0

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		text := string(content)

		fixed, applied := applyFixes(c, engine, text)
		if len(applied) == 0 {
			continue
		}
		totalApplied += len(applied)

		if c.Bool("dry-run") {
			color.Cyan("--- %s (would apply %d fixes)", path, len(applied))
			fmt.Println(fixed)
			continue
		}

		mode := os.FileMode(0o644)
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, []byte(fixed), mode); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		// The cached result is stale now; drop it so the next lint
		// re-analyzes the rewritten file.
		store.Invalidate(path)

		for _, issue := range applied {
			color.Green("  %s:%s fixed %s", path, issue.Location(), issue.Kind)
		}
	}

	if totalApplied == 0 {
		color.Yellow("No applicable fixes found")
		return nil
	}
	color.Green("Applied %d fixes", totalApplied)
	return nil
}

// applyFixes runs the engine in the mode selected by the flags and
// returns the new text with the issues fixed.
func applyFixes(c *cli.Context, engine *quickfix.Engine, text string) (string, []models.Issue) {
	if id := c.String("id"); id != "" {
		fixed, issue, ok := engine.ApplyByID(text, id)
		if !ok || fixed == text {
			return text, nil
		}
		return fixed, []models.Issue{*issue}
	}

	if c.Bool("all") {
		return engine.ApplyAll(text)
	}

	fixed, issue, ok := engine.ApplyFirst(text)
	if !ok || fixed == text {
		return text, nil
	}
	return fixed, []models.Issue{*issue}
}
