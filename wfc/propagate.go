package wfc

import "github.com/vplesko/go-wfc/wfc/transform"

func wrapMod(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// propagate drains the pending queue, decrementing the support counters of
// every neighbour pattern that depended on an eliminated (row, col, patt)
// triple, cascading further eliminations as counters reach zero. The
// overlap relation is vacuous for N=1 (see buildOverlapTable), so
// propagation only needs to discard the queue in that case.
func (s *State) propagate() {
	if s.n == 1 {
		for !s.pending.empty() {
			s.pending.pop()
		}
		return
	}

	w := s.wv
	for !s.pending.empty() {
		e := s.pending.pop()
		r, c, p := int(e.row), int(e.col), int(e.patt)

		for dir := transform.Direction(0); dir < transform.DirCount; dir++ {
			if s.edgeFixedAcross(r, c, dir) {
				continue
			}
			dr, dc := dir.Offset()
			nr := wrapMod(r+dr, w.rows)
			nc := wrapMod(c+dc, w.cols)
			opp := dir.Opposite()

			nIdx := w.cellIndex(nr, nc)
			cnt := int(w.pattCount[nIdx])
			base := nIdx * w.patts
			for li := 0; li < cnt; li++ {
				q := int(w.pattList[base+li])
				if !s.overlaps.get(dir, p, q) {
					continue
				}
				idx := w.supportIndex(nr, nc, q, opp)
				w.support[idx]--
				if w.support[idx] == 0 {
					w.eliminate(nr, nc, q)
					s.pending.push(nr, nc, q)
				}
			}
		}
	}
}
