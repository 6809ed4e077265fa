package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/gitchdev/gitch-go/internal/output"
)

// ExtractCmd returns the extract command.
func ExtractCmd() *cli.Command {
	flags := append(commonFlags(), cutoffFlags()...)
	flags = append(flags, diffFlags()...)
	flags = append(flags,
		&cli.BoolFlag{
			Name:    "diffs",
			Aliases: []string{"d"},
			Usage:   "Embed the patch each commit introduces",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	)

	return &cli.Command{
		Name:    "extract",
		Aliases: []string{"e"},
		Usage:   "Extract commit records as JSON",
		Flags:   flags,
		Action:  extractAction,
	}
}

func extractAction(c *cli.Context) error {
	ctx, err := newCommandContext(c)
	if err != nil {
		return err
	}

	report, err := buildReport(c, ctx, c.Bool("diffs"))
	if err != nil {
		return err
	}

	return writeReport(c, output.NewWriter(output.FormatJSON), report)
}
