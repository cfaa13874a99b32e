package main

import (
	"github.com/urfave/cli/v2"

	"github.com/emresnme/merdia/pkg/config"
)

// getPaths returns paths from positional args, defaulting to ["."]
func getPaths(c *cli.Context) []string {
	if c.Args().Len() > 0 {
		return c.Args().Slice()
	}
	return []string{"."}
}

// loadConfig loads the config named by --config, or searches standard
// locations.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

// colored reports whether colored output is wanted.
func colored(c *cli.Context, cfg *config.Config) bool {
	if c.Bool("no-color") {
		return false
	}
	return cfg.Output.Color
}

// getFormat returns the effective output format string.
func getFormat(c *cli.Context, cfg *config.Config) string {
	if c.IsSet("format") {
		return c.String("format")
	}
	if cfg.Output.Format != "" {
		return cfg.Output.Format
	}
	return c.String("format")
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
