package git

import (
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Signature identifies the author or committer of a commit.
type Signature struct {
	Name  string
	Email string
}

// Commit is an immutable decoded view of one commit. It is a detached value:
// every field is deep-copied out of the underlying object, so a Commit stays
// valid after the walker that produced it advances or is discarded.
type Commit struct {
	// ID is the fixed-width hex object id. It uniquely determines every
	// other field (commits are content-addressed).
	ID string
	// Parents holds the parent ids in commit order; empty for a root commit.
	Parents []string
	Author  Signature
	// Committer is the identity the commit time belongs to.
	Committer Signature
	// When is the commit (committer) instant in the local timezone.
	When time.Time
	// Summary is the first line of the message, trimmed.
	Summary string
	// Body is the message between the summary and the trailer block,
	// trimmed. Empty means the commit has no body.
	Body string
	// Trailers maps each trailer token to its distinct values.
	Trailers map[string][]string

	hash plumbing.Hash
}

// Hash returns the commit id as a plumbing hash.
func (c *Commit) Hash() plumbing.Hash { return c.hash }

// CivilTime renders the commit instant as a civil (wall-clock) datetime in
// the local timezone.
func (c *Commit) CivilTime() string {
	return c.When.Format("2006-01-02T15:04:05")
}

// decodeCommit builds a detached Commit record from a raw go-git commit
// object. Decoding is pure and never mutates the source object.
func decodeCommit(c *object.Commit) *Commit {
	parents := make([]string, len(c.ParentHashes))
	for i, h := range c.ParentHashes {
		parents[i] = h.String()
	}

	msg := ParseMessage(c.Message)

	return &Commit{
		ID:      c.Hash.String(),
		Parents: parents,
		Author: Signature{
			Name:  c.Author.Name,
			Email: c.Author.Email,
		},
		Committer: Signature{
			Name:  c.Committer.Name,
			Email: c.Committer.Email,
		},
		When:     c.Committer.When.In(time.Local),
		Summary:  msg.Summary,
		Body:     msg.Body,
		Trailers: msg.Trailers,
		hash:     c.Hash,
	}
}
