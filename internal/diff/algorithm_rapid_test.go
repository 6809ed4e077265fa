package diff

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/pmezard/go-difflib/difflib"
)

// Lines drawn from a tiny alphabet so generated sequences share content.
func linesGen() *rapid.Generator[[]string] {
	line := rapid.SampledFrom([]string{"a\n", "b\n", "c\n", "d\n"})
	return rapid.SliceOfN(line, 0, 40)
}

// applyScript rebuilds the new sequence from a script without test
// assertions, returning false on any structural defect.
func applyScript(old, new []string, ops []difflib.OpCode) ([]string, bool) {
	var result []string
	ai, bi := 0, 0
	for _, op := range ops {
		if op.I1 != ai || op.J1 != bi {
			return nil, false
		}
		switch op.Tag {
		case 'e':
			if !reflect.DeepEqual(old[op.I1:op.I2], new[op.J1:op.J2]) {
				return nil, false
			}
			result = append(result, old[op.I1:op.I2]...)
		case 'd':
			if op.J1 != op.J2 {
				return nil, false
			}
		case 'i':
			if op.I1 != op.I2 {
				return nil, false
			}
			result = append(result, new[op.J1:op.J2]...)
		case 'r':
			result = append(result, new[op.J1:op.J2]...)
		default:
			return nil, false
		}
		ai, bi = op.I2, op.J2
	}
	if ai != len(old) || bi != len(new) {
		return nil, false
	}
	return result, true
}

func TestScriptReconstructionProperty(t *testing.T) {
	for _, algorithm := range []Algorithm{Histogram, Myers, MyersMinimal} {
		algorithm := algorithm
		t.Run(algorithm.String(), func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				old := linesGen().Draw(rt, "old")
				new := linesGen().Draw(rt, "new")

				ops := algorithm.opCodes(old, new)
				got, ok := applyScript(old, new, ops)
				if !ok {
					rt.Fatalf("invalid script %+v", ops)
				}
				want := new
				if len(want) == 0 {
					want = nil
				}
				if !reflect.DeepEqual(got, want) {
					rt.Fatalf("script reconstructs %q, want %q", got, new)
				}
			})
		})
	}
}

func TestIdenticalInputsProduceNoHunksProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lines := linesGen().Draw(rt, "lines")
		for _, algorithm := range []Algorithm{Histogram, Myers, MyersMinimal} {
			ops := algorithm.opCodes(lines, lines)
			if groups := groupOpCodes(ops, contextLines); groups != nil {
				rt.Fatalf("%s produced hunks for identical inputs: %+v", algorithm, groups)
			}
		}
	})
}
