package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gitchdev/gitch-go/internal/diff"
	"github.com/gitchdev/gitch-go/internal/output"
)

// LogCmd returns the log command.
func LogCmd() *cli.Command {
	flags := append(commonFlags(), cutoffFlags()...)
	flags = append(flags, diffFlags()...)
	flags = append(flags,
		&cli.BoolFlag{
			Name:    "patch",
			Aliases: []string{"p"},
			Usage:   "Show the patch each commit introduces",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	)

	return &cli.Command{
		Name:    "log",
		Aliases: []string{"l"},
		Usage:   "List commits newest-first between optional cutoffs",
		Flags:   flags,
		Action:  logAction,
	}
}

func logAction(c *cli.Context) error {
	ctx, err := newCommandContext(c)
	if err != nil {
		return err
	}

	report, err := buildReport(c, ctx, c.Bool("patch"))
	if err != nil {
		return err
	}

	writer := output.NewWriter(output.ParseFormat(c.String("format")))
	return writeReport(c, writer, report)
}

// buildReport walks the bounded history and optionally attaches patches.
func buildReport(c *cli.Context, ctx *CommandContext, withDiffs bool) (*output.Report, error) {
	cutoffs, err := cutoffsFromFlags(c)
	if err != nil {
		return nil, err
	}

	commits, err := ctx.Repo.Commits(cutoffs)
	if err != nil {
		return nil, err
	}

	root, err := ctx.Repo.Root()
	if err != nil {
		return nil, err
	}
	report := &output.Report{
		Repo:    root,
		Commits: make([]output.Commit, 0, len(commits)),
	}

	var engine *diff.Engine
	if withDiffs {
		opts, err := diffOptions(c, ctx.Config.Diff.Algorithm)
		if err != nil {
			return nil, err
		}
		engine = diff.NewEngine(ctx.Repo.Gogit(), opts)
	}

	for _, commit := range commits {
		entry := output.NewCommit(commit)
		if engine != nil {
			text, ok, err := engine.DiffCommit(c.Context, commit.Hash())
			if err != nil {
				return nil, err
			}
			entry.SetDiff(text, ok)
		}
		report.Commits = append(report.Commits, entry)
	}
	return report, nil
}

// writeReport sends the report to --output or the app writer.
func writeReport(c *cli.Context, writer output.Writer, report *output.Report) error {
	var dest io.Writer = c.App.Writer
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		dest = f
	}
	return writer.Write(dest, report)
}
