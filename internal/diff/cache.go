package diff

import (
	"fmt"
	"io"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// resource is the decoded content of one blob side of a path change.
type resource struct {
	data   []byte
	binary bool
	lines  []string
}

// resourceCache resolves object ids to content and binary classification,
// memoized for the duration of one diff call so a blob shared by several
// path changes is decoded once. It is owned by a single call and must not
// be shared across goroutines.
type resourceCache struct {
	repo    *gogit.Repository
	entries map[plumbing.Hash]*resource
}

func newResourceCache(repo *gogit.Repository) *resourceCache {
	return &resourceCache{
		repo:    repo,
		entries: make(map[plumbing.Hash]*resource),
	}
}

// load returns the cached resource for id, decoding it on first use. The
// null id resolves to empty text content without touching the store.
func (rc *resourceCache) load(id plumbing.Hash, path string) (*resource, error) {
	if cached, ok := rc.entries[id]; ok {
		return cached, nil
	}
	if id == plumbing.ZeroHash {
		empty := &resource{}
		rc.entries[id] = empty
		return empty, nil
	}

	blob, err := object.GetBlob(rc.repo.Storer, id)
	if err != nil {
		return nil, fmt.Errorf("decode blob %s for %s: %w", id, path, err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob %s for %s: %w", id, path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob %s for %s: %w", id, path, err)
	}

	binary, err := object.NewFile(path, filemode.Regular, blob).IsBinary()
	if err != nil {
		return nil, fmt.Errorf("classify blob %s for %s: %w", id, path, err)
	}

	res := &resource{data: data, binary: binary}
	if !binary {
		res.lines = splitLines(data)
	}
	rc.entries[id] = res
	return res, nil
}
