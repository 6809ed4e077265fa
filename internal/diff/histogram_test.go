package diff

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func TestHistogramOpCodes(t *testing.T) {
	tests := []struct {
		name string
		old  []string
		new  []string
		want []difflib.OpCode
	}{
		{
			name: "Equal",
			old:  []string{"a", "b"},
			new:  []string{"a", "b"},
			want: []difflib.OpCode{{Tag: 'e', I1: 0, I2: 2, J1: 0, J2: 2}},
		},
		{
			name: "InsertAfterPrefix",
			old:  []string{"hello\n"},
			new:  []string{"hello\n", "world\n"},
			want: []difflib.OpCode{
				{Tag: 'e', I1: 0, I2: 1, J1: 0, J2: 1},
				{Tag: 'i', I1: 1, I2: 1, J1: 1, J2: 2},
			},
		},
		{
			name: "DeleteMiddle",
			old:  []string{"a", "b", "c"},
			new:  []string{"a", "c"},
			want: []difflib.OpCode{
				{Tag: 'e', I1: 0, I2: 1, J1: 0, J2: 1},
				{Tag: 'd', I1: 1, I2: 2, J1: 1, J2: 1},
				{Tag: 'e', I1: 2, I2: 3, J1: 1, J2: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := histogramOpCodes(tt.old, tt.new)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("histogramOpCodes = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHistogramAnchorsOnRareLine(t *testing.T) {
	// "unique" occurs once on each side; the braces are common. The script
	// must keep the unique line as an unchanged anchor.
	old := []string{"{", "old1", "unique", "old2", "}"}
	new := []string{"{", "new1", "unique", "new2", "}"}

	ops := histogramOpCodes(old, new)
	checkReconstruction(t, old, new, ops)

	anchored := false
	for _, op := range ops {
		if op.Tag == 'e' && old[op.I1] == "unique" {
			anchored = true
		}
	}
	if !anchored {
		t.Errorf("unique line not kept as anchor: %+v", ops)
	}
}

func TestFindAnchor(t *testing.T) {
	t.Run("PicksLowestCount", func(t *testing.T) {
		a := []string{"common", "common", "rare"}
		b := []string{"common", "rare"}
		ai, bi, ok := findAnchor(a, b)
		if !ok {
			t.Fatal("expected an anchor")
		}
		if a[ai] != "rare" || b[bi] != "rare" {
			t.Errorf("anchor = (%d,%d) on %q", ai, bi, a[ai])
		}
	})

	t.Run("NoCommonLine", func(t *testing.T) {
		if _, _, ok := findAnchor([]string{"a"}, []string{"b"}); ok {
			t.Error("expected no anchor")
		}
	})

	t.Run("OverlyCommonLineRejected", func(t *testing.T) {
		var a, b []string
		for i := 0; i < maxAnchorOccurrences+1; i++ {
			a = append(a, "x")
		}
		b = []string{"x"}
		if _, _, ok := findAnchor(a, b); ok {
			t.Error("expected line above the occurrence bound to be rejected")
		}
	})
}

func TestHistogramFallsBackWithoutAnchor(t *testing.T) {
	// No line is shared, so the region diffs via the fallback; the result
	// must still be a valid script.
	var old, new []string
	for i := 0; i < 10; i++ {
		old = append(old, "old"+strconv.Itoa(i))
		new = append(new, "new"+strconv.Itoa(i))
	}
	checkReconstruction(t, old, new, histogramOpCodes(old, new))
}
