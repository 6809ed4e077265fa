package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the symmetric context width around changed lines.
const contextLines = 3

// renderHunks writes unified-diff hunks for the given edit script. The
// newline convention is one terminator after the hunk header and after each
// rendered line; tokens keep their own terminators, which are stripped
// before the rendered one is appended.
func renderHunks(b *strings.Builder, old, new []string, ops []difflib.OpCode) {
	for _, group := range groupOpCodes(ops, contextLines) {
		first, last := group[0], group[len(group)-1]
		fmt.Fprintf(b, "@@ -%s +%s @@\n",
			formatRange(first.I1, last.I2),
			formatRange(first.J1, last.J2),
		)
		for _, op := range group {
			switch op.Tag {
			case 'e':
				for _, line := range old[op.I1:op.I2] {
					writeDiffLine(b, ' ', line)
				}
			case 'd':
				for _, line := range old[op.I1:op.I2] {
					writeDiffLine(b, '-', line)
				}
			case 'i':
				for _, line := range new[op.J1:op.J2] {
					writeDiffLine(b, '+', line)
				}
			case 'r':
				for _, line := range old[op.I1:op.I2] {
					writeDiffLine(b, '-', line)
				}
				for _, line := range new[op.J1:op.J2] {
					writeDiffLine(b, '+', line)
				}
			}
		}
	}
}

func writeDiffLine(b *strings.Builder, prefix byte, line string) {
	b.WriteByte(prefix)
	b.WriteString(strings.TrimSuffix(line, "\n"))
	b.WriteByte('\n')
}

// formatRange renders one side of a hunk header in git's short form: the
// count is omitted when 1, and an empty range reports the line before it.
func formatRange(start, end int) string {
	length := end - start
	switch length {
	case 0:
		return fmt.Sprintf("%d,0", start)
	case 1:
		return fmt.Sprintf("%d", start+1)
	default:
		return fmt.Sprintf("%d,%d", start+1, length)
	}
}

// groupOpCodes clamps equal runs to the context width and splits the script
// into hunk groups wherever an equal run exceeds twice the context.
func groupOpCodes(ops []difflib.OpCode, context int) [][]difflib.OpCode {
	if len(ops) == 0 {
		return nil
	}
	// A script with no changes produces no hunks.
	changed := false
	for _, op := range ops {
		if op.Tag != 'e' {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	// Clamp the leading and trailing equal runs.
	clamped := make([]difflib.OpCode, len(ops))
	copy(clamped, ops)
	if first := &clamped[0]; first.Tag == 'e' && first.I2-first.I1 > context {
		first.I1 = first.I2 - context
		first.J1 = first.J2 - context
	}
	if last := &clamped[len(clamped)-1]; last.Tag == 'e' && last.I2-last.I1 > context {
		last.I2 = last.I1 + context
		last.J2 = last.J1 + context
	}

	var groups [][]difflib.OpCode
	var current []difflib.OpCode
	for _, op := range clamped {
		if op.Tag == 'e' && op.I2-op.I1 > 2*context && len(current) > 0 {
			// Split: close the current group with trailing context and
			// start the next with leading context.
			tail := op
			tail.I2 = tail.I1 + context
			tail.J2 = tail.J1 + context
			current = append(current, tail)
			groups = append(groups, current)

			head := op
			head.I1 = head.I2 - context
			head.J1 = head.J2 - context
			current = []difflib.OpCode{head}
			continue
		}
		current = append(current, op)
	}
	groups = append(groups, current)
	return groups
}
