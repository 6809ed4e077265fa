package diff

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// Kind classifies a path change.
type Kind int

const (
	KindAddition Kind = iota
	KindDeletion
	KindModification
	KindRename
)

// String returns a human-readable name for the change kind.
func (k Kind) String() string {
	switch k {
	case KindAddition:
		return "addition"
	case KindDeletion:
		return "deletion"
	case KindModification:
		return "modification"
	case KindRename:
		return "rename"
	default:
		return "unknown"
	}
}

// PathChange is one classified change between two tree snapshots. Absent
// sides carry the zero hash and an empty mode: an addition has no old id,
// a deletion no new id.
type PathChange struct {
	Kind Kind
	// Path is the destination path; SourcePath differs only for renames.
	Path       string
	SourcePath string
	OldID      plumbing.Hash
	NewID      plumbing.Hash
	OldMode    filemode.FileMode
	NewMode    filemode.FileMode
}

// IsPureRename reports whether the change moved content without modifying
// it. Such changes render with no hunk body.
func (c PathChange) IsPureRename() bool {
	return c.Kind == KindRename && c.OldID == c.NewID
}

// isBlobMode reports whether entries with this mode carry diffable blob
// content. Directories, submodules and symlinks are not diffable.
func isBlobMode(m filemode.FileMode) bool {
	return m == filemode.Regular || m == filemode.Executable || m == filemode.Deprecated
}

// classifyChanges converts the collaborator's tree-diff output into path
// changes, preserving its order. Non-blob entries are skipped entirely so
// they are never miscounted as additions of empty content. Rename
// classification is taken from the collaborator, never computed here.
func classifyChanges(changes object.Changes) ([]PathChange, error) {
	classified := make([]PathChange, 0, len(changes))

	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, fmt.Errorf("classify change: %w", err)
		}

		switch action {
		case merkletrie.Insert:
			if !isBlobMode(change.To.TreeEntry.Mode) {
				continue
			}
			classified = append(classified, PathChange{
				Kind:    KindAddition,
				Path:    change.To.Name,
				NewID:   change.To.TreeEntry.Hash,
				NewMode: change.To.TreeEntry.Mode,
			})
		case merkletrie.Delete:
			if !isBlobMode(change.From.TreeEntry.Mode) {
				continue
			}
			classified = append(classified, PathChange{
				Kind:    KindDeletion,
				Path:    change.From.Name,
				OldID:   change.From.TreeEntry.Hash,
				OldMode: change.From.TreeEntry.Mode,
			})
		case merkletrie.Modify:
			if !isBlobMode(change.From.TreeEntry.Mode) || !isBlobMode(change.To.TreeEntry.Mode) {
				continue
			}
			kind := KindModification
			if change.From.Name != change.To.Name {
				kind = KindRename
			}
			classified = append(classified, PathChange{
				Kind:       kind,
				Path:       change.To.Name,
				SourcePath: change.From.Name,
				OldID:      change.From.TreeEntry.Hash,
				NewID:      change.To.TreeEntry.Hash,
				OldMode:    change.From.TreeEntry.Mode,
				NewMode:    change.To.TreeEntry.Mode,
			})
		}
	}

	return classified, nil
}
