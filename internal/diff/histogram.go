package diff

import "github.com/pmezard/go-difflib/difflib"

// maxAnchorOccurrences bounds how common a line may be before it stops
// qualifying as a histogram anchor.
const maxAnchorOccurrences = 64

// histogramOpCodes computes an edit script by recursively splitting both
// sequences around a common line with the lowest occurrence count, which
// tends to anchor hunks on distinctive lines (function signatures rather
// than braces). Regions without a usable anchor fall back to Myers.
func histogramOpCodes(a, b []string) []difflib.OpCode {
	var ops []difflib.OpCode
	histogramRegion(a, b, 0, 0, &ops)
	return mergeOps(ops)
}

func histogramRegion(a, b []string, aOff, bOff int, out *[]difflib.OpCode) {
	pre := commonPrefix(a, b)
	if pre > 0 {
		*out = append(*out, difflib.OpCode{
			Tag: 'e',
			I1:  aOff, I2: aOff + pre,
			J1: bOff, J2: bOff + pre,
		})
	}
	suf := commonSuffix(a, b, pre)

	am := a[pre : len(a)-suf]
	bm := b[pre : len(b)-suf]
	amOff, bmOff := aOff+pre, bOff+pre

	switch {
	case len(am) == 0 && len(bm) == 0:
		// Nothing between prefix and suffix.
	case len(am) == 0:
		*out = append(*out, difflib.OpCode{Tag: 'i', I1: amOff, I2: amOff, J1: bmOff, J2: bmOff + len(bm)})
	case len(bm) == 0:
		*out = append(*out, difflib.OpCode{Tag: 'd', I1: amOff, I2: amOff + len(am), J1: bmOff, J2: bmOff})
	default:
		ai, bi, ok := findAnchor(am, bm)
		if !ok {
			*out = append(*out, shiftOps(myersOpCodes(am, bm, true), amOff, bmOff)...)
			break
		}
		histogramRegion(am[:ai], bm[:bi], amOff, bmOff, out)
		*out = append(*out, difflib.OpCode{
			Tag: 'e',
			I1:  amOff + ai, I2: amOff + ai + 1,
			J1: bmOff + bi, J2: bmOff + bi + 1,
		})
		histogramRegion(am[ai+1:], bm[bi+1:], amOff+ai+1, bmOff+bi+1, out)
	}

	if suf > 0 {
		*out = append(*out, difflib.OpCode{
			Tag: 'e',
			I1:  aOff + len(a) - suf, I2: aOff + len(a),
			J1: bOff + len(b) - suf, J2: bOff + len(b),
		})
	}
}

// findAnchor picks the common line with the lowest occurrence count on the
// old side, aligned at its first occurrence in each sequence. Lines more
// common than maxAnchorOccurrences never qualify.
func findAnchor(a, b []string) (ai, bi int, ok bool) {
	counts := make(map[string]int, len(a))
	firstInA := make(map[string]int, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		counts[a[i]]++
		firstInA[a[i]] = i
	}

	best := maxAnchorOccurrences + 1
	for j, line := range b {
		count := counts[line]
		if count == 0 || count >= best {
			continue
		}
		ai, bi, ok = firstInA[line], j, true
		best = count
		if best == 1 {
			break
		}
	}
	return ai, bi, ok
}
