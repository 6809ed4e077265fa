// Package cmd wires the gitch CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gitchdev/gitch-go/internal/diff"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitch",
		Usage:   "Structured Git commit helper",
		Version: "1.0.0",
		Commands: []*cli.Command{
			LogCmd(),
			ExtractCmd(),
			DiffCmd(),
			CheckCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (default: .gitch.yaml at the repository root)",
			},
		},
	}
}

// Common flags shared across commands.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to a Git repository (any path inside the worktree)",
			Value:   ".",
		},
	}
}

// cutoffFlags bound which commits a walk yields.
func cutoffFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "start-commit",
			Usage: "Earliest commit to include (inclusive)",
		},
		&cli.StringFlag{
			Name:  "end-commit",
			Usage: "Latest commit to include",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Earliest commit time to include (timestamp, datetime or date)",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "Latest commit time to include (timestamp, datetime or date)",
		},
	}
}

// diffFlags configure patch rendering.
func diffFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Usage:   "Line diff algorithm (histogram, myers, myers-minimal)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of paths to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of paths to exclude (can be specified multiple times)",
		},
	}
}

// diffOptions builds engine options from the flags, falling back to the
// configured default algorithm.
func diffOptions(c *cli.Context, configured string) (diff.Options, error) {
	name := c.String("algorithm")
	if name == "" {
		name = configured
	}
	algorithm, err := diff.ParseAlgorithm(name)
	if err != nil {
		return diff.Options{}, err
	}
	opts := diff.Options{
		Algorithm: algorithm,
		Include:   c.StringSlice("include"),
		Exclude:   c.StringSlice("exclude"),
	}
	if err := opts.Validate(); err != nil {
		return diff.Options{}, err
	}
	return opts, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
