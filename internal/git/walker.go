package git

import (
	"container/heap"
	"io"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// traversalMode selects the ordering strategy for one walk. It is chosen
// once per call: the pruned variant is only used when a start-timestamp
// cutoff is present.
type traversalMode int

const (
	// orderNewestFirst yields every ancestor ordered by commit time.
	orderNewestFirst traversalMode = iota
	// orderNewestFirstCutoff additionally prunes any branch whose commit
	// time has dropped below the start cutoff: such commits are neither
	// yielded nor expanded.
	orderNewestFirstCutoff
)

// Walker produces Commit records for the ancestry of a starting commit,
// newest-first by commit time, bounded by an optional cutoff window. It is
// a forward-only lazy sequence: the caller may stop consuming at any point
// and discard it, but cannot resume a dropped walk.
type Walker struct {
	repo    *Repository
	cutoffs Cutoffs
	mode    traversalMode

	frontier commitQueue
	seen     map[plumbing.Hash]bool

	skipUntilEndID bool
	skipAfterEnd   bool
	done           bool
}

// Walk starts a newest-first walk from the branch tip.
func (r *Repository) Walk(cutoffs Cutoffs) (*Walker, error) {
	tip, err := r.head()
	if err != nil {
		return nil, err
	}
	return newWalker(r, tip, cutoffs), nil
}

func newWalker(repo *Repository, tip *object.Commit, cutoffs Cutoffs) *Walker {
	mode := orderNewestFirst
	if cutoffs.Start != nil {
		mode = orderNewestFirstCutoff
	}

	w := &Walker{
		repo:           repo,
		cutoffs:        cutoffs,
		mode:           mode,
		seen:           map[plumbing.Hash]bool{tip.Hash: true},
		skipUntilEndID: cutoffs.EndID != nil,
		skipAfterEnd:   cutoffs.End != nil,
	}
	w.frontier.push(tip)
	return w
}

// Next returns the next surviving commit record, or io.EOF once the walk is
// exhausted or the start cutoff has been emitted.
func (w *Walker) Next() (*Commit, error) {
	if w.done {
		return nil, io.EOF
	}

	for {
		commit, err := w.nextAncestor()
		if err != nil {
			return nil, err
		}

		// Discard everything traversed before the end cutoff id; the
		// cutoff commit itself is the newest one kept. If the id never
		// appears the walk drains without yielding anything.
		if w.skipUntilEndID {
			if commit.Hash != *w.cutoffs.EndID {
				continue
			}
			w.skipUntilEndID = false
		}

		// Discard commits still strictly after the end timestamp.
		if w.skipAfterEnd {
			if commit.Committer.When.After(*w.cutoffs.End) {
				continue
			}
			w.skipAfterEnd = false
		}

		// Inclusive stop: emit the start cutoff commit, then end the walk.
		if w.cutoffs.StartID != nil && commit.Hash == *w.cutoffs.StartID {
			w.done = true
		}

		return decodeCommit(commit), nil
	}
}

// nextAncestor pops the next commit in newest-first order and expands its
// parents, applying the traversal mode's pruning rule.
func (w *Walker) nextAncestor() (*object.Commit, error) {
	for w.frontier.Len() > 0 {
		commit := w.frontier.pop()

		if w.mode == orderNewestFirstCutoff && commit.Committer.When.Before(*w.cutoffs.Start) {
			// Pruned: the branch below this commit is not traversed.
			continue
		}

		for _, parentHash := range commit.ParentHashes {
			if w.seen[parentHash] {
				continue
			}
			w.seen[parentHash] = true
			parent, err := w.repo.repo.CommitObject(parentHash)
			if err != nil {
				return nil, &DecodeError{Msg: "commit " + parentHash.String(), Err: err}
			}
			w.frontier.push(parent)
		}

		return commit, nil
	}
	return nil, io.EOF
}

// ForEach calls fn for every surviving commit. Returning storer.ErrStop
// from fn terminates the walk early without error.
func (w *Walker) ForEach(fn func(*Commit) error) error {
	for {
		c, err := w.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			if err == storer.ErrStop {
				return nil
			}
			return err
		}
	}
}

// commitQueue is a max-heap of commits ordered by commit time, ties broken
// by insertion order so that equal-timestamp siblings keep traversal order.
type commitQueue struct {
	entries []queueEntry
	seq     int
}

type queueEntry struct {
	commit *object.Commit
	seq    int
}

func (q *commitQueue) Len() int { return len(q.entries) }

func (q *commitQueue) Less(i, j int) bool {
	ti, tj := q.entries[i].commit.Committer.When, q.entries[j].commit.Committer.When
	if ti.Equal(tj) {
		return q.entries[i].seq < q.entries[j].seq
	}
	return ti.After(tj)
}

func (q *commitQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *commitQueue) Push(x any) {
	q.entries = append(q.entries, x.(queueEntry))
}

func (q *commitQueue) Pop() any {
	last := q.entries[len(q.entries)-1]
	q.entries = q.entries[:len(q.entries)-1]
	return last
}

func (q *commitQueue) push(c *object.Commit) {
	heap.Push(q, queueEntry{commit: c, seq: q.seq})
	q.seq++
}

func (q *commitQueue) pop() *object.Commit {
	return heap.Pop(q).(queueEntry).commit
}
