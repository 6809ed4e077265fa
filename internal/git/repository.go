package git

import (
	"errors"
	"io"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repository is a read-only handle onto a Git repository. A handle is safe
// to use from one goroutine at a time; independent handles may operate
// concurrently against the same on-disk store since nothing here writes.
type Repository struct {
	repo *gogit.Repository
}

// Discover opens the repository containing path, walking up ancestor
// directories until the version-control metadata directory is found.
func Discover(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, &NotFoundError{Msg: "no git repository at or above " + path, Err: err}
		}
		return nil, err
	}
	return &Repository{repo: repo}, nil
}

// NewRepository wraps an already-opened go-git repository.
func NewRepository(repo *gogit.Repository) *Repository {
	return &Repository{repo: repo}
}

// Gogit exposes the underlying go-git repository for collaborators such as
// the diff engine.
func (r *Repository) Gogit() *gogit.Repository { return r.repo }

// Root returns the canonicalized filesystem path of the worktree containing
// the version-control metadata directory.
func (r *Repository) Root() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", &NotFoundError{Msg: "repository has no worktree", Err: err}
	}
	root, err := filepath.EvalSymlinks(wt.Filesystem.Root())
	if err != nil {
		return "", err
	}
	return filepath.Abs(root)
}

// head resolves the current branch tip.
func (r *Repository) head() (*object.Commit, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, &NotFoundError{Msg: "head reference", Err: err}
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, &DecodeError{Msg: "head commit " + ref.Hash().String(), Err: err}
	}
	return commit, nil
}

// Head returns the decoded record of the current branch tip.
func (r *Repository) Head() (*Commit, error) {
	commit, err := r.head()
	if err != nil {
		return nil, err
	}
	return decodeCommit(commit), nil
}

// ResolveCommit looks up one commit by id and decodes it.
func (r *Repository) ResolveCommit(id string) (*Commit, error) {
	h, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	commit, err := r.repo.CommitObject(h)
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, &NotFoundError{Msg: "commit " + id, Err: err}
		}
		return nil, &DecodeError{Msg: "commit " + id, Err: err}
	}
	return decodeCommit(commit), nil
}

// Commits walks the ancestry of the branch tip newest-first and collects
// every record surviving the cutoffs.
func (r *Repository) Commits(cutoffs Cutoffs) ([]*Commit, error) {
	walker, err := r.Walk(cutoffs)
	if err != nil {
		return nil, err
	}

	var commits []*Commit
	if err := walker.ForEach(func(c *Commit) error {
		commits = append(commits, c)
		return nil
	}); err != nil {
		return nil, err
	}
	return commits, nil
}

// FirstCommit returns the oldest ancestor of the branch tip. It walks the
// whole history, so it is O(history length).
func (r *Repository) FirstCommit() (*Commit, error) {
	walker, err := r.Walk(Cutoffs{})
	if err != nil {
		return nil, err
	}

	var last *Commit
	for {
		c, err := walker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		last = c
	}
	if last == nil {
		return nil, &NotFoundError{Msg: "repository has no commits"}
	}
	return last, nil
}
