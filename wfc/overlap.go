package wfc

import (
	"math/bits"

	"github.com/vplesko/go-wfc/wfc/transform"
)

const wordBits = 64

// overlapTable is a bit-packed [direction][a][b] relation: bit b of row
// (dir,a) is set iff pattern b may be placed adjacent to pattern a in
// direction dir and their NxN windows agree on the shared region.
type overlapTable struct {
	pattCount   int
	wordsPerRow int
	bits        []uint64
}

func newOverlapTable(pattCount int, alloc Allocator) overlapTable {
	wordsPerRow := (pattCount + wordBits - 1) / wordBits
	return overlapTable{
		pattCount:   pattCount,
		wordsPerRow: wordsPerRow,
		bits:        alloc.Uint64s(transform.DirCount * pattCount * wordsPerRow),
	}
}

func (t *overlapTable) rowOffset(dir transform.Direction, a int) int {
	return (int(dir)*t.pattCount + a) * t.wordsPerRow
}

func (t *overlapTable) get(dir transform.Direction, a, b int) bool {
	word := t.rowOffset(dir, a) + b/wordBits
	return t.bits[word]&(uint64(1)<<uint(b%wordBits)) != 0
}

func (t *overlapTable) set(dir transform.Direction, a, b int, v bool) {
	word := t.rowOffset(dir, a) + b/wordBits
	mask := uint64(1) << uint(b%wordBits)
	if v {
		t.bits[word] |= mask
	} else {
		t.bits[word] &^= mask
	}
}

// countSet returns the number of b for which get(dir, a, b) holds.
func (t *overlapTable) countSet(dir transform.Direction, a int) int {
	row := t.rowOffset(dir, a)
	n := 0
	for w := 0; w < t.wordsPerRow; w++ {
		n += bits.OnesCount64(t.bits[row+w])
	}
	return n
}

// overlapMatches reports whether pattern b, placed adjacent to pattern a in
// direction dir, agrees cell-by-cell with a on their shared (n-1)xn or
// nx(n-1) overlap region.
func overlapMatches(n int, src Grid, dir transform.Direction, a, b pattern) bool {
	dr, dc := dir.Offset()
	for i2 := 0; i2 < n; i2++ {
		i1 := i2 + dr
		if i1 < 0 || i1 >= n {
			continue
		}
		for j2 := 0; j2 < n; j2++ {
			j1 := j2 + dc
			if j1 < 0 || j1 >= n {
				continue
			}
			ca := a.cell(n, src, i1, j1)
			cb := b.cell(n, src, i2, j2)
			for k := range ca {
				if ca[k] != cb[k] {
					return false
				}
			}
		}
	}
	return true
}

func buildOverlapTable(n int, src Grid, patts []pattern, alloc Allocator) overlapTable {
	t := newOverlapTable(len(patts), alloc)
	if n == 1 {
		// A 1x1 pattern's overlap with anything in any direction is vacuous
		// (no shared cells survive the shift), so every pair is compatible.
		for a := range patts {
			for dir := transform.Direction(0); dir < transform.DirCount; dir++ {
				for b := range patts {
					t.set(dir, a, b, true)
				}
			}
		}
		return t
	}
	for dir := transform.Direction(0); dir < transform.DirCount; dir++ {
		for a := range patts {
			for b := range patts {
				if overlapMatches(n, src, dir, patts[a], patts[b]) {
					t.set(dir, a, b, true)
				}
			}
		}
	}
	return t
}
