// Package output renders commit reports to the console or as JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/gitchdev/gitch-go/internal/git"
)

// Format selects an output format.
type Format int

const (
	FormatConsole Format = iota
	FormatJSON
)

// ParseFormat maps a flag value to a Format, defaulting to console.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	default:
		return FormatConsole
	}
}

// Signature is the serialized form of a commit identity.
type Signature struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Commit is one commit record in a report.
type Commit struct {
	ID        string              `json:"id"`
	Summary   string              `json:"summary"`
	Body      *string             `json:"body"`
	Time      string              `json:"time"`
	Author    Signature           `json:"author"`
	Committer Signature           `json:"committer"`
	Trailers  map[string][]string `json:"trailers"`
	// Diff is absent when patches were not requested, null for a commit
	// with no changes, and the patch text otherwise.
	Diff json.RawMessage `json:"diff,omitempty"`
}

// Report is a full extraction result.
type Report struct {
	Repo    string   `json:"repo"`
	Commits []Commit `json:"commits"`
}

// NewCommit converts a decoded record into its report form.
func NewCommit(c *git.Commit) Commit {
	var body *string
	if c.Body != "" {
		b := c.Body
		body = &b
	}
	return Commit{
		ID:        c.ID,
		Summary:   c.Summary,
		Body:      body,
		Time:      c.CivilTime(),
		Author:    Signature{Name: c.Author.Name, Email: c.Author.Email},
		Committer: Signature{Name: c.Committer.Name, Email: c.Committer.Email},
		Trailers:  c.Trailers,
	}
}

// SetDiff attaches rendered patch text; ok=false records an explicit
// "no changes" (serialized as null) rather than an empty string.
func (c *Commit) SetDiff(text string, ok bool) {
	if !ok {
		c.Diff = json.RawMessage("null")
		return
	}
	encoded, _ := json.Marshal(text)
	c.Diff = encoded
}

// Writer renders a report to a stream.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// NewWriter builds the writer for a format.
func NewWriter(format Format) Writer {
	switch format {
	case FormatJSON:
		return &JSONWriter{Indent: true}
	default:
		return &ConsoleWriter{}
	}
}
