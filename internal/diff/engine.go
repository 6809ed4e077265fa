package diff

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/gitchdev/gitch-go/internal/git"
)

// Options configures a diff engine.
type Options struct {
	Algorithm Algorithm
	// Include and Exclude are doublestar glob patterns applied to changed
	// paths. Exclude wins; an empty include list accepts everything.
	Include []string
	Exclude []string
}

// Validate rejects malformed glob patterns up front. A malformed pattern
// never matches, so skipping this check would silently filter everything
// out instead of failing.
func (o Options) Validate() error {
	for _, patterns := range [][]string{o.Include, o.Exclude} {
		for _, pattern := range patterns {
			if !doublestar.ValidatePattern(pattern) {
				return &git.ArgumentError{Msg: fmt.Sprintf("malformed path pattern %q", pattern)}
			}
		}
	}
	return nil
}

// Engine computes the textual changes a commit introduces relative to its
// first parent. One engine may serve many commits, but each call owns its
// resource cache, so an engine must not be used from multiple goroutines
// without external synchronization.
type Engine struct {
	repo *gogit.Repository
	opts Options
}

// NewEngine creates a diff engine over an open repository.
func NewEngine(repo *gogit.Repository, opts Options) *Engine {
	return &Engine{repo: repo, opts: opts}
}

// DiffCommit renders the patch a commit introduces relative to its first
// parent (or the empty tree for a root commit). The second return value is
// false when the change set is empty: "diffed but identical" is distinct
// from an empty document.
func (e *Engine) DiffCommit(ctx context.Context, id plumbing.Hash) (string, bool, error) {
	commit, err := e.repo.CommitObject(id)
	if err != nil {
		return "", false, &git.DecodeError{Msg: "commit " + id.String(), Err: err}
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", false, &git.DecodeError{Msg: "tree of " + id.String(), Err: err}
	}

	parentTree := &object.Tree{}
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return "", false, &git.DecodeError{Msg: "parent of " + id.String(), Err: err}
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return "", false, &git.DecodeError{Msg: "tree of " + parent.Hash.String(), Err: err}
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, &object.DiffTreeOptions{DetectRenames: true})
	if err != nil {
		return "", false, &git.DecodeError{Msg: "tree diff of " + id.String(), Err: err}
	}

	classified, err := classifyChanges(changes)
	if err != nil {
		return "", false, &git.DecodeError{Msg: "tree diff of " + id.String(), Err: err}
	}

	cache := newResourceCache(e.repo)
	var b strings.Builder
	for _, change := range classified {
		if !e.matchesFilters(change.Path) {
			continue
		}
		if err := renderChange(&b, change, cache, e.opts.Algorithm); err != nil {
			return "", false, &git.DecodeError{Msg: "render " + change.Path, Err: err}
		}
	}

	if b.Len() == 0 {
		return "", false, nil
	}
	return b.String(), true, nil
}

// matchesFilters checks a changed path against the include/exclude globs.
func (e *Engine) matchesFilters(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range e.opts.Exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	if len(e.opts.Include) == 0 {
		return true
	}
	for _, pattern := range e.opts.Include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}
