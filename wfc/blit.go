package wfc

// Blit renders the state's chosen patterns into dst. It requires
// status == StatusCompleted, at which point exactly one pattern is present
// at every wave point; Blit is idempotent and repeated calls with the same
// src produce byte-identical output.
func (s *State) Blit(src Grid, dst []byte) error {
	if s.status != StatusCompleted {
		return ErrNotCompleted
	}
	if err := src.validate(); err != nil {
		return err
	}
	if len(dst) != s.dstW*s.dstH*s.cellSize {
		return ErrNilPixels
	}
	out := Grid{Width: s.dstW, Height: s.dstH, CellSize: s.cellSize, Pixels: dst}

	for r := 0; r < s.dstH; r++ {
		for c := 0; c < s.dstW; c++ {
			p, err := s.presentPatternAt(r, c)
			if err != nil {
				return err
			}
			_, _, offR, offC := s.destToWave(r, c)
			cell := s.patterns[p].cell(s.n, src, offR, offC)
			copy(out.Cell(r, c), cell)
		}
	}
	return nil
}

// presentPatternAt returns the index of any pattern still present at wave
// point (destToWave of (destRow, destCol)). It is an internal helper used
// by Blit.
func (s *State) presentPatternAt(destRow, destCol int) (int, error) {
	wr, wc, _, _ := s.destToWave(destRow, destCol)
	for p := range s.patterns {
		if s.wv.present(wr, wc, p) {
			return p, nil
		}
	}
	return 0, ErrNotCompleted
}
