package git

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
)

// Bound selects how a bare calendar date is widened into an instant.
type Bound int

const (
	// BoundStart widens a date to the start of that day (lower bound).
	BoundStart Bound = iota
	// BoundEnd widens a date to the end of that day (upper bound).
	BoundEnd
)

// Cutoffs bounds a commit walk. Both id- and timestamp-based bounds may be
// set on the same side; they apply independently and conjunctively. A nil
// field means unbounded.
type Cutoffs struct {
	// StartID is the oldest commit to yield (inclusive stop).
	StartID *plumbing.Hash
	// EndID is the newest commit to yield; everything traversed before it
	// is discarded. If it never appears in the ancestry the walk yields
	// nothing.
	EndID *plumbing.Hash
	// Start prunes ancestry older than this instant.
	Start *time.Time
	// End discards commits strictly after this instant.
	End *time.Time
}

// ParseCutoffs parses caller-supplied cutoff strings. Empty strings mean
// unbounded. Malformed ids and timestamps are argument errors.
func ParseCutoffs(startID, endID, start, end string) (Cutoffs, error) {
	var cutoffs Cutoffs

	if startID != "" {
		h, err := ParseObjectID(startID)
		if err != nil {
			return Cutoffs{}, err
		}
		cutoffs.StartID = &h
	}
	if endID != "" {
		h, err := ParseObjectID(endID)
		if err != nil {
			return Cutoffs{}, err
		}
		cutoffs.EndID = &h
	}
	if start != "" {
		t, err := ParseTimestamp(start, BoundStart)
		if err != nil {
			return Cutoffs{}, err
		}
		cutoffs.Start = &t
	}
	if end != "" {
		t, err := ParseTimestamp(end, BoundEnd)
		if err != nil {
			return Cutoffs{}, err
		}
		cutoffs.End = &t
	}

	return cutoffs, nil
}

// ParseObjectID parses a fixed-width hex object identifier.
func ParseObjectID(s string) (plumbing.Hash, error) {
	if len(s) != 2*len(plumbing.ZeroHash) || !isHex(s) {
		return plumbing.ZeroHash, &ArgumentError{Msg: fmt.Sprintf("malformed object id %q", s)}
	}
	return plumbing.NewHash(s), nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseTimestamp parses a cutoff timestamp. Three escalating formats are
// accepted: an absolute instant with timezone offset (RFC 3339), a civil
// datetime interpreted in the local timezone, and a bare calendar date
// widened to the start or end of that day depending on the bound.
func ParseTimestamp(s string, bound Bound) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		if bound == BoundEnd {
			return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return t, nil
	}
	return time.Time{}, &ArgumentError{Msg: fmt.Sprintf("malformed timestamp %q", s)}
}
