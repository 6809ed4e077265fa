package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gitchdev/gitch-go/internal/diff"
	"github.com/gitchdev/gitch-go/internal/git"
	"github.com/gitchdev/gitch-go/internal/output"
)

// DiffCmd returns the diff command.
func DiffCmd() *cli.Command {
	flags := append(commonFlags(), diffFlags()...)

	return &cli.Command{
		Name:      "diff",
		Usage:     "Show the patch a commit introduces over its first parent",
		ArgsUsage: "[commit]",
		Flags:     flags,
		Action:    diffAction,
	}
}

func diffAction(c *cli.Context) error {
	ctx, err := newCommandContext(c)
	if err != nil {
		return err
	}

	commit, err := targetCommit(c, ctx)
	if err != nil {
		return err
	}

	opts, err := diffOptions(c, ctx.Config.Diff.Algorithm)
	if err != nil {
		return err
	}

	engine := diff.NewEngine(ctx.Repo.Gogit(), opts)
	text, ok, err := engine.DiffCommit(c.Context, commit.Hash())
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return output.WriteColoredDiff(c.App.Writer, text)
}

// targetCommit resolves the positional commit argument, defaulting to the
// branch tip.
func targetCommit(c *cli.Context, ctx *CommandContext) (*git.Commit, error) {
	if c.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one commit argument, got %d", c.NArg())
	}
	if id := c.Args().First(); id != "" {
		return ctx.Repo.ResolveCommit(id)
	}
	return ctx.Repo.Head()
}
