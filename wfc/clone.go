package wfc

// Clone returns an independent deep copy of s. Mutating the clone (via
// Step) never mutates the parent, and vice versa; the overlap table and
// pattern list are immutable after Init and are shared by reference, since
// nothing ever writes to them again.
func (s *State) Clone() *State {
	alloc := s.hooks.Allocator
	everCollapsed := alloc.Bools(len(s.everCollapsed))
	copy(everCollapsed, s.everCollapsed)

	return &State{
		n:              s.n,
		options:        s.options,
		cellSize:       s.cellSize,
		dstH:           s.dstH,
		dstW:           s.dstW,
		hooks:          s.hooks,
		patterns:       s.patterns, // immutable after Init; safe to share
		overlaps:       s.overlaps, // immutable after Init; safe to share
		wv:             s.wv.clone(alloc),
		pending:        s.pending.clone(),
		everCollapsed:  everCollapsed,
		collapsedCount: s.collapsedCount,
		status:         s.status,
	}
}
