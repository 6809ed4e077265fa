package diff

import "github.com/pmezard/go-difflib/difflib"

// myersCostCap bounds the edit distance explored by the non-minimal Myers
// variant. Past the cap the remaining middle is emitted as one coarse
// replacement, trading minimality for bounded work on degenerate inputs.
const myersCostCap = 1024

// myersOpCodes computes an edit script with the classic O(ND) algorithm.
// With minimal set the script has shortest length; otherwise the search is
// capped at myersCostCap.
func myersOpCodes(a, b []string, minimal bool) []difflib.OpCode {
	pre := commonPrefix(a, b)
	suf := commonSuffix(a, b, pre)

	var ops []difflib.OpCode
	if pre > 0 {
		ops = append(ops, difflib.OpCode{Tag: 'e', I1: 0, I2: pre, J1: 0, J2: pre})
	}

	am := a[pre : len(a)-suf]
	bm := b[pre : len(b)-suf]
	middle := shiftOps(myersMiddle(am, bm, minimal), pre, pre)
	ops = append(ops, middle...)

	if suf > 0 {
		ops = append(ops, difflib.OpCode{
			Tag: 'e',
			I1:  len(a) - suf, I2: len(a),
			J1: len(b) - suf, J2: len(b),
		})
	}
	return mergeOps(ops)
}

// myersMiddle diffs two sequences with no common prefix or suffix.
func myersMiddle(a, b []string, minimal bool) []difflib.OpCode {
	n, m := len(a), len(b)
	switch {
	case n == 0 && m == 0:
		return nil
	case n == 0:
		return []difflib.OpCode{{Tag: 'i', I1: 0, I2: 0, J1: 0, J2: m}}
	case m == 0:
		return []difflib.OpCode{{Tag: 'd', I1: 0, I2: n, J1: 0, J2: 0}}
	}

	trace, found := myersTrace(a, b, minimal)
	if !found {
		return []difflib.OpCode{{Tag: 'r', I1: 0, I2: n, J1: 0, J2: m}}
	}
	return myersBacktrack(trace, n, m)
}

// myersTrace runs the forward O(ND) search, snapshotting the furthest-x
// frontier before each depth so the path can be reconstructed. It reports
// found=false only when the capped variant gives up.
func myersTrace(a, b []string, minimal bool) ([][]int, bool) {
	n, m := len(a), len(b)
	max := n + m
	offset := max

	v := make([]int, 2*max+2)
	v[offset+1] = 0
	var trace [][]int

	for d := 0; d <= max; d++ {
		if !minimal && d > myersCostCap {
			return nil, false
		}
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				return trace, true
			}
		}
	}
	return trace, true
}

// myersStep is one reconstructed move: a deletion of a[ai], an insertion of
// b[bi], or a diagonal (equal) pair.
type myersStep struct {
	tag    byte
	ai, bi int
}

func myersBacktrack(trace [][]int, n, m int) []difflib.OpCode {
	offset := n + m
	x, y := n, m
	var steps []myersStep

	for d := len(trace) - 1; d >= 0 && (x > 0 || y > 0); d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			steps = append(steps, myersStep{tag: 'e', ai: x, bi: y})
		}
		if d > 0 {
			if x == prevX {
				y--
				steps = append(steps, myersStep{tag: 'i', bi: y})
			} else {
				x--
				steps = append(steps, myersStep{tag: 'd', ai: x})
			}
		}
		x, y = prevX, prevY
	}

	return stepsToOps(steps)
}

// stepsToOps converts reverse-ordered steps into forward opcodes, grouping
// each maximal changed run into deletions followed by insertions.
func stepsToOps(steps []myersStep) []difflib.OpCode {
	var ops []difflib.OpCode

	delStart, delEnd := -1, -1
	insStart, insEnd := -1, -1
	flush := func() {
		switch {
		case delStart != -1 && insStart != -1:
			ops = append(ops, difflib.OpCode{Tag: 'r', I1: delStart, I2: delEnd, J1: insStart, J2: insEnd})
		case delStart != -1:
			j := 0
			if len(ops) > 0 {
				j = ops[len(ops)-1].J2
			}
			ops = append(ops, difflib.OpCode{Tag: 'd', I1: delStart, I2: delEnd, J1: j, J2: j})
		case insStart != -1:
			i := 0
			if len(ops) > 0 {
				i = ops[len(ops)-1].I2
			}
			ops = append(ops, difflib.OpCode{Tag: 'i', I1: i, I2: i, J1: insStart, J2: insEnd})
		}
		delStart, insStart = -1, -1
	}

	// Steps were collected newest-first; replay them in forward order.
	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]
		switch s.tag {
		case 'e':
			flush()
			if len(ops) > 0 && ops[len(ops)-1].Tag == 'e' {
				ops[len(ops)-1].I2 = s.ai + 1
				ops[len(ops)-1].J2 = s.bi + 1
			} else {
				ops = append(ops, difflib.OpCode{Tag: 'e', I1: s.ai, I2: s.ai + 1, J1: s.bi, J2: s.bi + 1})
			}
		case 'd':
			if delStart == -1 {
				delStart, delEnd = s.ai, s.ai+1
			} else {
				delEnd = s.ai + 1
			}
		case 'i':
			if insStart == -1 {
				insStart, insEnd = s.bi, s.bi+1
			} else {
				insEnd = s.bi + 1
			}
		}
	}
	flush()
	return ops
}

// shiftOps offsets every range in ops by the given deltas.
func shiftOps(ops []difflib.OpCode, da, db int) []difflib.OpCode {
	for i := range ops {
		ops[i].I1 += da
		ops[i].I2 += da
		ops[i].J1 += db
		ops[i].J2 += db
	}
	return ops
}

// mergeOps coalesces adjacent ops with the same tag and drops empty ranges.
func mergeOps(ops []difflib.OpCode) []difflib.OpCode {
	merged := ops[:0]
	for _, op := range ops {
		if op.I1 == op.I2 && op.J1 == op.J2 {
			continue
		}
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if last.Tag == op.Tag && last.I2 == op.I1 && last.J2 == op.J1 {
				last.I2 = op.I2
				last.J2 = op.J2
				continue
			}
		}
		merged = append(merged, op)
	}
	return merged
}
