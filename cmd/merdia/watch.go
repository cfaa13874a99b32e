package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/emresnme/merdia/pkg/analyzer/lint"
	"github.com/emresnme/merdia/pkg/models"
	"github.com/emresnme/merdia/pkg/watch"
)

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Watch for diagram changes and re-lint",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "debounce",
				Usage: "Debounce duration (default from config)",
			},
		},
		Action: runWatchCmd,
	}
}

func runWatchCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	absPath, err := filepath.Abs(getPaths(c)[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	watcher, err := watch.NewWatcher(absPath, cfg, c.Duration("debounce"))
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Stop()

	runner := lint.FromConfig(cfg)
	useColor := colored(c, cfg)

	// One scheduler per file so rapid consecutive saves of the same
	// diagram coalesce into a single analysis run.
	var mu sync.Mutex
	schedulers := make(map[string]*watch.Scheduler)
	defer func() {
		mu.Lock()
		defer mu.Unlock()
		for _, s := range schedulers {
			s.Close()
		}
	}()

	watcher.SetCallback(func(path string) {
		content, err := os.ReadFile(path)
		if err != nil {
			color.Red("read %s: %v", path, err)
			return
		}

		mu.Lock()
		sched, ok := schedulers[path]
		if !ok {
			sched = watch.NewScheduler(50*time.Millisecond, func(text string) {
				reportIssues(path, runner.Analyze(text), useColor)
			})
			schedulers[path] = sched
		}
		mu.Unlock()

		sched.Schedule(string(content))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nStopping watch...")
		cancel()
	}()

	return watcher.Start(ctx)
}

// reportIssues prints the lint result for one changed file.
func reportIssues(path string, issues []models.Issue, useColor bool) {
	if len(issues) == 0 {
		color.Green("%s: no issues", path)
		return
	}

	color.Yellow("%s: %d issues", path, len(issues))
	for _, issue := range issues {
		fmt.Printf("  %s %s %s\n", issue.Location(), kindLabel(issue.Kind, useColor), issue.Message)
		if issue.HasFix() {
			fmt.Printf("    fix available: merdia fix --id %s\n", issue.Fingerprint())
		}
	}
}
