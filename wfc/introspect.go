package wfc

// PatternPresentAt reports whether pattern p is still a legal choice at
// destination cell (x, y) (x is the column, y is the row, matching the
// (x,y) image convention used throughout this package's public surface).
func (s *State) PatternPresentAt(p, x, y int) (bool, error) {
	if p < 0 || p >= len(s.patterns) {
		return false, ErrIndexOutOfRange
	}
	if x < 0 || x >= s.dstW || y < 0 || y >= s.dstH {
		return false, ErrIndexOutOfRange
	}
	wr, wc, _, _ := s.destToWave(y, x)
	return s.wv.present(wr, wc, p), nil
}

// ModifiedAt reports whether the wave point backing destination cell
// (x, y) has changed since the last observation cycle.
func (s *State) ModifiedAt(x, y int) (bool, error) {
	if x < 0 || x >= s.dstW || y < 0 || y >= s.dstH {
		return false, ErrIndexOutOfRange
	}
	wr, wc, _, _ := s.destToWave(y, x)
	return s.wv.modified[s.wv.cellIndex(wr, wc)], nil
}

// PixelToBlitAt returns the bytes that Blit would write at (x, y) if
// pattern p were the one chosen at its wave point, regardless of whether
// the state has reached StatusCompleted or whether p is actually still
// present there. The returned slice aliases src.Pixels, matching Grid.Cell;
// callers must copy it to retain a value beyond the next mutation of src.
func (s *State) PixelToBlitAt(src Grid, p, x, y int) ([]byte, error) {
	if p < 0 || p >= len(s.patterns) {
		return nil, ErrIndexOutOfRange
	}
	if x < 0 || x >= s.dstW || y < 0 || y >= s.dstH {
		return nil, ErrIndexOutOfRange
	}
	if err := src.validate(); err != nil {
		return nil, err
	}
	_, _, offR, offC := s.destToWave(y, x)
	return s.patterns[p].cell(s.n, src, offR, offC), nil
}
