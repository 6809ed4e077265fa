// Package diff computes per-commit tree diffs and renders them as
// git-compatible unified patch text.
package diff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Algorithm selects the line-matching strategy used for hunk computation.
type Algorithm int

const (
	// Histogram favors human-readable diffs on code by recursing around
	// low-occurrence anchor lines.
	Histogram Algorithm = iota
	// Myers is the classic O(ND) shortest-edit-script algorithm with a
	// cost cap that trades minimality for speed on degenerate inputs.
	Myers
	// MyersMinimal is Myers without the cost cap, biased toward
	// minimal-length scripts over readability.
	MyersMinimal
)

// String returns the flag spelling of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Histogram:
		return "histogram"
	case Myers:
		return "myers"
	case MyersMinimal:
		return "myers-minimal"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses a flag or config spelling of an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "histogram":
		return Histogram, nil
	case "myers":
		return Myers, nil
	case "myers-minimal", "minimal":
		return MyersMinimal, nil
	default:
		return Histogram, fmt.Errorf("unknown diff algorithm %q", s)
	}
}

// opCodes computes the edit script between two line sequences under the
// selected strategy. The result is a complete script: concatenating its
// ranges covers both sequences in order.
func (a Algorithm) opCodes(old, new []string) []difflib.OpCode {
	switch a {
	case Myers:
		return myersOpCodes(old, new, false)
	case MyersMinimal:
		return myersOpCodes(old, new, true)
	default:
		return histogramOpCodes(old, new)
	}
}
