package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gitchdev/gitch-go/internal/diff"
	"github.com/gitchdev/gitch-go/internal/git"
	"github.com/gitchdev/gitch-go/internal/lint"
)

// CheckCmd returns the check command.
func CheckCmd() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Check commit messages against the configured schema",
		Flags:  commonFlags(),
		Action: checkAction,
	}
}

func checkAction(c *cli.Context) error {
	ctx, err := newCommandContext(c)
	if err != nil {
		return err
	}

	cutoffs := git.Cutoffs{}
	if id := ctx.Config.StartingFrom; id != "" {
		h, err := git.ParseObjectID(id)
		if err != nil {
			return fmt.Errorf("starting-from: %w", err)
		}
		cutoffs.StartID = &h
	}

	commits, err := ctx.Repo.Commits(cutoffs)
	if err != nil {
		return err
	}

	checker := lint.NewChecker(ctx.Config)
	var violations []lint.Violation
	for _, commit := range commits {
		violations = append(violations, checker.CheckCommit(commit)...)
	}

	if ctx.Config.FirstCommitIsEmpty {
		v, err := checkFirstCommitEmpty(c, ctx)
		if err != nil {
			return err
		}
		violations = append(violations, v...)
	}

	if len(violations) == 0 {
		fmt.Fprintf(c.App.Writer, "%d commits checked, no violations\n", len(commits))
		return nil
	}
	for _, v := range violations {
		fmt.Fprintln(c.App.Writer, v)
	}
	return cli.Exit(fmt.Sprintf("%d violation(s) found", len(violations)), 1)
}

// checkFirstCommitEmpty verifies that the repository's oldest commit
// introduces no changes.
func checkFirstCommitEmpty(c *cli.Context, ctx *CommandContext) ([]lint.Violation, error) {
	first, err := ctx.Repo.FirstCommit()
	if err != nil {
		return nil, err
	}

	engine := diff.NewEngine(ctx.Repo.Gogit(), diff.Options{})
	_, changed, err := engine.DiffCommit(c.Context, first.Hash())
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, nil
	}
	return []lint.Violation{{
		CommitID: first.ID,
		Message:  "first commit introduces changes but first-commit-is-empty is set",
	}}, nil
}
