package wfc

import "math"

// recomputeEntropies refreshes the Shannon entropy of every cell flagged
// modified since the last observation cycle, then clears that flag. A cell
// with one or zero present patterns is never a collapse candidate, so it
// is given +Inf rather than a computed entropy.
func (s *State) recomputeEntropies() {
	w := s.wv
	for idx := 0; idx < w.entropyLen; idx++ {
		if !w.modified[idx] {
			continue
		}
		w.modified[idx] = false

		cnt := int(w.pattCount[idx])
		if cnt <= 1 {
			w.entropy[idx] = float32(math.Inf(1))
			continue
		}

		base := idx * w.patts
		var total float64
		for li := 0; li < cnt; li++ {
			p := int(w.pattList[base+li])
			total += float64(s.patterns[p].freq)
		}
		var h float64
		for li := 0; li < cnt; li++ {
			p := int(w.pattList[base+li])
			pr := float64(s.patterns[p].freq) / total
			h -= pr * math.Log2(pr)
		}
		w.entropy[idx] = float32(h)
	}
}

// approxEqualNonNeg reports whether a and b, both non-negative (or +Inf),
// are within 8 ULPs of each other when their IEEE-754 bit patterns are
// compared as two's-complement integers. This is the tie-break the
// observer uses instead of an absolute-epsilon comparison, which would
// misclassify entropies that differ only in their last few mantissa bits
// due to summation order.
func approxEqualNonNeg(a, b float32) bool {
	const ulps = 8
	ai := int32(math.Float32bits(a))
	bi := int32(math.Float32bits(b))
	d := ai - bi
	if d < 0 {
		d = -d
	}
	return d < ulps
}

// selectCell finds the minimum finite entropy across the wave and returns
// a uniformly random cell among those within 8 ULPs of it. ok is false
// when every cell is already collapsed or contradictory (entropy +Inf
// everywhere), meaning there is nothing left to observe.
func (s *State) selectCell() (r, c int, ok bool) {
	w := s.wv
	minV := float32(math.Inf(1))
	for idx := 0; idx < w.entropyLen; idx++ {
		if w.entropy[idx] < minV {
			minV = w.entropy[idx]
		}
	}
	if math.IsInf(float64(minV), 1) {
		return 0, 0, false
	}

	count := 0
	for idx := 0; idx < w.entropyLen; idx++ {
		if approxEqualNonNeg(w.entropy[idx], minV) {
			count++
		}
	}

	pick := int(s.hooks.RNG.Float64() * float64(count))
	chosen := 0
	for idx := 0; idx < w.entropyLen && pick >= 0; idx++ {
		if approxEqualNonNeg(w.entropy[idx], minV) {
			chosen = idx
			pick--
		}
	}
	return chosen / w.cols, chosen % w.cols, true
}

// collapseCell draws one present pattern at (r,c) weighted by frequency
// using the injected RNG, then eliminates every other present pattern
// there, enqueueing each elimination for propagation.
func (s *State) collapseCell(r, c int) {
	w := s.wv
	idx := w.cellIndex(r, c)
	cnt := int(w.pattCount[idx])
	base := idx * w.patts

	var total float64
	for li := 0; li < cnt; li++ {
		p := int(w.pattList[base+li])
		total += float64(s.patterns[p].freq)
	}

	x := s.hooks.RNG.Float64() * total
	chosen := int(w.pattList[base+cnt-1])
	for li := 0; li < cnt; li++ {
		p := int(w.pattList[base+li])
		x -= float64(s.patterns[p].freq)
		if x < 0 {
			chosen = p
			break
		}
	}

	for li := 0; li < cnt; li++ {
		p := int(w.pattList[base+li])
		if p == chosen {
			continue
		}
		w.eliminate(r, c, p)
		s.pending.push(r, c, p)
	}
	w.modified[idx] = true
}
