package wfc

import "github.com/vplesko/go-wfc/wfc/transform"

// applyEdgeRestriction eliminates, at every wave boundary on an
// edge-fixed axis, any pattern whose edge flag for that side is false.
// It is a no-op on an axis whose edgeFix option is not set.
func (s *State) applyEdgeRestriction() {
	w := s.wv
	if s.options.has(EdgeFixV) {
		for c := 0; c < w.cols; c++ {
			s.restrictEdge(0, c, transform.RowLess)
			s.restrictEdge(w.rows-1, c, transform.RowMore)
		}
	}
	if s.options.has(EdgeFixH) {
		for r := 0; r < w.rows; r++ {
			s.restrictEdge(r, 0, transform.ColLess)
			s.restrictEdge(r, w.cols-1, transform.ColMore)
		}
	}
}

func (s *State) restrictEdge(r, c int, dir transform.Direction) {
	for pi, p := range s.patterns {
		if !s.wv.present(r, c, pi) {
			continue
		}
		if !p.edge.Touches(dir) {
			s.wv.eliminate(r, c, pi)
			s.pending.push(r, c, pi)
		}
	}
}

// applyKeepRestriction eliminates, at every wave anchor overlapping a
// keep-marked destination cell, any pattern whose corresponding cell (read
// from src through the pattern's transform) does not byte-match the
// pre-seeded destination pixel. keep and seed share the destination's shape.
func (s *State) applyKeepRestriction(src Grid, keep []bool, seed Grid) {
	w := s.wv
	n := s.n
	for wr := 0; wr < w.rows; wr++ {
		for wc := 0; wc < w.cols; wc++ {
			for i := 0; i < n; i++ {
				dr := wrapMod(wr+i, s.dstH)
				for j := 0; j < n; j++ {
					dc := wrapMod(wc+j, s.dstW)
					if !keep[dr*s.dstW+dc] {
						continue
					}
					want := seed.Cell(dr, dc)
					for pi, p := range s.patterns {
						if !w.present(wr, wc, pi) {
							continue
						}
						if !cellEqual(p.cell(n, src, i, j), want) {
							w.eliminate(wr, wc, pi)
							s.pending.push(wr, wc, pi)
						}
					}
				}
			}
		}
	}
}

func cellEqual(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
