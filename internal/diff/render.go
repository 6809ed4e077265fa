package diff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
)

// renderChange appends the git patch block for one path change: header,
// mode/index metadata, path lines and hunks. Each block ends with exactly
// one newline so blocks concatenate into a valid multi-file patch.
func renderChange(b *strings.Builder, change PathChange, cache *resourceCache, algorithm Algorithm) error {
	switch change.Kind {
	case KindAddition:
		fmt.Fprintf(b, "diff --git a/%s b/%s\n", change.Path, change.Path)
		fmt.Fprintf(b, "new file mode %s\n", formatMode(change.NewMode))
		fmt.Fprintf(b, "index %s..%s\n", shortID(plumbing.ZeroHash), shortID(change.NewID))
		return renderBody(b, change, "/dev/null", "b/"+change.Path, cache, algorithm)

	case KindDeletion:
		fmt.Fprintf(b, "diff --git a/%s b/%s\n", change.Path, change.Path)
		fmt.Fprintf(b, "deleted file mode %s\n", formatMode(change.OldMode))
		fmt.Fprintf(b, "index %s..%s\n", shortID(change.OldID), shortID(plumbing.ZeroHash))
		return renderBody(b, change, "a/"+change.Path, "/dev/null", cache, algorithm)

	case KindModification:
		fmt.Fprintf(b, "diff --git a/%s b/%s\n", change.Path, change.Path)
		fmt.Fprintf(b, "index %s..%s %s\n", shortID(change.OldID), shortID(change.NewID), formatMode(change.NewMode))
		return renderBody(b, change, "a/"+change.Path, "b/"+change.Path, cache, algorithm)

	case KindRename:
		fmt.Fprintf(b, "diff --git a/%s b/%s\n", change.SourcePath, change.Path)
		if change.IsPureRename() {
			fmt.Fprintf(b, "old mode %s\n", formatMode(change.OldMode))
			fmt.Fprintf(b, "new mode %s\n", formatMode(change.NewMode))
			fmt.Fprintf(b, "similarity index 100%%\n")
			fmt.Fprintf(b, "rename from %s\n", change.SourcePath)
			fmt.Fprintf(b, "rename to %s\n", change.Path)
			return nil
		}
		fmt.Fprintf(b, "index %s..%s %s\n", shortID(change.OldID), shortID(change.NewID), formatMode(change.NewMode))
		return renderBody(b, change, "a/"+change.SourcePath, "b/"+change.Path, cache, algorithm)

	default:
		return fmt.Errorf("unsupported change kind %v", change.Kind)
	}
}

// renderBody writes the path lines and unified hunks for a content diff.
// Binary content on either side suppresses the hunks: a git-compatible
// placeholder line takes the place of the path lines and body.
func renderBody(b *strings.Builder, change PathChange, oldLabel, newLabel string, cache *resourceCache, algorithm Algorithm) error {
	oldPath := change.SourcePath
	if oldPath == "" {
		oldPath = change.Path
	}
	oldRes, err := cache.load(change.OldID, oldPath)
	if err != nil {
		return err
	}
	newRes, err := cache.load(change.NewID, change.Path)
	if err != nil {
		return err
	}

	if oldRes.binary || newRes.binary {
		fmt.Fprintf(b, "Binary files %s and %s differ\n", oldLabel, newLabel)
		return nil
	}

	ops := algorithm.opCodes(oldRes.lines, newRes.lines)
	if len(groupOpCodes(ops, contextLines)) == 0 {
		return nil
	}

	b.WriteString("--- " + oldLabel + "\n")
	b.WriteString("+++ " + newLabel + "\n")
	renderHunks(b, oldRes.lines, newRes.lines, ops)
	return nil
}

// formatMode renders a file mode in git's octal form, e.g. 100644.
func formatMode(m filemode.FileMode) string {
	return strconv.FormatUint(uint64(m), 8)
}

// shortID returns the 7-character short form of a content id. Collisions
// within 7 characters are cosmetically ambiguous but harmless: hunk content
// still distinguishes the blobs.
func shortID(id plumbing.Hash) string {
	return id.String()[:7]
}
