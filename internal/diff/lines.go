package diff

import "strings"

// splitLines tokenizes content into lines keeping each terminator inside its
// token, so "a\nb" and "a\nb\n" compare differently on the last line. A
// trailing line without a terminator is its own token.
//
// difflib.SplitLines is not used here: it appends a phantom terminator-only
// token to every input, which breaks byte-exact git output.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// commonPrefix returns the number of equal leading elements.
func commonPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// commonSuffix returns the number of equal trailing elements, never
// overlapping the first keep elements of either side.
func commonSuffix(a, b []string, keep int) int {
	n := 0
	for n < len(a)-keep && n < len(b)-keep && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}
