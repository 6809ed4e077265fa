package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/gitchdev/gitch-go/config"
	"github.com/gitchdev/gitch-go/internal/git"
)

// CommandContext bundles the state every command needs: the discovered
// repository and the loaded configuration.
type CommandContext struct {
	Repo   *git.Repository
	Config *config.Config
}

// newCommandContext discovers the repository from --repo and loads the
// configuration, either from --config or from the repository root.
func newCommandContext(c *cli.Context) (*CommandContext, error) {
	repo, err := git.Discover(c.String("repo"))
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	} else if root, rootErr := repo.Root(); rootErr == nil {
		if path, ok := config.Find(root); ok {
			cfg, err = config.Load(path)
			if err != nil {
				return nil, err
			}
		}
	}

	return &CommandContext{Repo: repo, Config: cfg}, nil
}

// cutoffsFromFlags parses the cutoff flags shared by log and extract.
func cutoffsFromFlags(c *cli.Context) (git.Cutoffs, error) {
	return git.ParseCutoffs(
		c.String("start-commit"),
		c.String("end-commit"),
		c.String("since"),
		c.String("until"),
	)
}
