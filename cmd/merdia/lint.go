package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/emresnme/merdia/internal/cache"
	"github.com/emresnme/merdia/internal/output"
	"github.com/emresnme/merdia/internal/progress"
	"github.com/emresnme/merdia/internal/scanner"
	"github.com/emresnme/merdia/pkg/analyzer"
	"github.com/emresnme/merdia/pkg/analyzer/lint"
	"github.com/emresnme/merdia/pkg/models"
)

// fileReport is the lint result for one diagram file.
type fileReport struct {
	Path   string         `json:"path"`
	Issues []models.Issue `json:"issues"`
}

func lintCmd() *cli.Command {
	return &cli.Command{
		Name:      "lint",
		Aliases:   []string{"check"},
		Usage:     "Analyze diagram files and report issues",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Disable the lint result cache",
			},
			&cli.BoolFlag{
				Name:  "fail-on-issues",
				Usage: "Exit with status 1 when issues are found",
			},
		},
		Action: runLintCmd,
	}
}

func runLintCmd(c *cli.Context) error {
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

	cacheEnabled := cfg.Cache.Enabled && !c.Bool("no-cache")
	store, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cacheEnabled)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	runner := lint.FromConfig(cfg)
	tracker := progress.NewTracker("Linting diagrams...", len(files))

	reports := analyzer.ForEachFileWithProgress(files, func(path string) (fileReport, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return fileReport{}, err
		}

		hash := cache.HashBytes(content)
		if issues, ok := store.Get(path, hash); ok {
			return fileReport{Path: path, Issues: issues}, nil
		}

		issues := runner.Analyze(string(content))
		if err := store.Put(path, hash, issues); err != nil && c.Bool("verbose") {
			fmt.Fprintf(os.Stderr, "cache write failed for %s: %v\n", path, err)
		}
		return fileReport{Path: path, Issues: issues}, nil
	}, tracker.Tick)
	tracker.FinishSuccess()

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})

	useColor := colored(c, cfg)
	var rows [][]string
	total := 0
	fixable := 0
	for _, report := range reports {
		for _, issue := range report.Issues {
			total++
			fixLabel := ""
			if issue.HasFix() {
				fixable++
				fixLabel = issue.Fingerprint()
			}
			rows = append(rows, []string{
				fmt.Sprintf("%s:%s", report.Path, issue.Location()),
				kindLabel(issue.Kind, useColor),
				truncate(issue.Message, 70),
				fixLabel,
			})
		}
	}

	formatter, err := output.NewFormatter(output.ParseFormat(getFormat(c, cfg)), c.String("output"), useColor)
	if err != nil {
		return err
	}
	defer formatter.Close()

	table := output.NewTable(
		"Diagram Issues",
		[]string{"Location", "Kind", "Message", "Fix ID"},
		rows,
		[]string{
			fmt.Sprintf("Files: %d", len(reports)),
			fmt.Sprintf("Issues: %d", total),
			fmt.Sprintf("Fixable: %d", fixable),
			"",
		},
		reports,
	)

	if err := formatter.Output(table); err != nil {
		return err
	}

	if c.Bool("fail-on-issues") && total > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// kindLabel colors an issue kind: structural problems red, typo
// heuristics yellow.
func kindLabel(kind models.IssueKind, useColor bool) string {
	if !useColor {
		return kind.String()
	}
	switch kind {
	case models.KindPossibleTypo:
		return color.YellowString(kind.String())
	default:
		return color.RedString(kind.String())
	}
}
