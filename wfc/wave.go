package wfc

import (
	"math"

	"github.com/vplesko/go-wfc/wfc/transform"
)

// entropyPad is how many extra +Inf slots trail the logical entropy array.
// The observer's scans stop at entropyLen and never read these slots.
const entropyPad = 3

// wave owns the per-point state driving propagation and observation:
// AC-4 support counters, the cached presence view, the padded entropy
// array, and the modified set.
type wave struct {
	rows, cols, patts int

	// support[((r*cols+c)*patts+p)*4+dir]
	support []int32

	pattCount []int32 // rows*cols
	pattList  []int32 // rows*cols*patts, first pattCount[r,c] entries valid

	entropyLen int // rows*cols
	entropy    []float32

	modified []bool // rows*cols
}

func newWave(rows, cols, patts int, alloc Allocator) *wave {
	n := rows * cols
	w := &wave{
		rows: rows, cols: cols, patts: patts,
		support:    alloc.Int32s(n * patts * transform.DirCount),
		pattCount:  alloc.Int32s(n),
		pattList:   alloc.Int32s(n * patts),
		entropyLen: n,
		entropy:    alloc.Float32s(n + entropyPad),
		modified:   alloc.Bools(n),
	}
	for i := range w.entropy {
		w.entropy[i] = float32(math.Inf(1))
	}
	return w
}

func (w *wave) cellIndex(r, c int) int { return r*w.cols + c }

func (w *wave) supportIndex(r, c, p int, dir transform.Direction) int {
	return ((w.cellIndex(r, c))*w.patts+p)*transform.DirCount + int(dir)
}

// present reports whether pattern p still has any support at (r,c),
// relying on the invariant that all four directional counters are zeroed
// together the instant any one of them first reaches zero.
func (w *wave) present(r, c, p int) bool {
	return w.support[w.supportIndex(r, c, p, 0)] > 0
}

// eliminate zeroes every counter for (r,c,p) so present() reports false,
// regardless of which direction's decrement triggered the elimination.
func (w *wave) eliminate(r, c, p int) {
	base := w.supportIndex(r, c, p, 0)
	for d := 0; d < transform.DirCount; d++ {
		w.support[base+d] = 0
	}
	w.modified[w.cellIndex(r, c)] = true
}

// refreshCell recomputes pattCount/pattList for (r,c) from the support
// counters. It is the authoritative-cache refresh the component design
// calls for at cycle boundaries (not during propagation itself).
func (w *wave) refreshCell(r, c int) {
	idx := w.cellIndex(r, c)
	n := 0
	base := idx * w.patts
	for p := 0; p < w.patts; p++ {
		if w.present(r, c, p) {
			w.pattList[base+n] = int32(p)
			n++
		}
	}
	w.pattCount[idx] = int32(n)
}

// markAllModified flags every cell as modified, forcing the next
// observation cycle to recompute every entropy from scratch.
func (w *wave) markAllModified() {
	for i := range w.modified {
		w.modified[i] = true
	}
}

func (w *wave) refreshAll() {
	for r := 0; r < w.rows; r++ {
		for c := 0; c < w.cols; c++ {
			w.refreshCell(r, c)
		}
	}
}

func (w *wave) clone(alloc Allocator) *wave {
	n := &wave{
		rows: w.rows, cols: w.cols, patts: w.patts,
		entropyLen: w.entropyLen,
	}
	n.support = alloc.Int32s(len(w.support))
	copy(n.support, w.support)
	n.pattCount = alloc.Int32s(len(w.pattCount))
	copy(n.pattCount, w.pattCount)
	n.pattList = alloc.Int32s(len(w.pattList))
	copy(n.pattList, w.pattList)
	n.entropy = alloc.Float32s(len(w.entropy))
	copy(n.entropy, w.entropy)
	n.modified = alloc.Bools(len(w.modified))
	copy(n.modified, w.modified)
	return n
}
