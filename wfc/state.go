package wfc

import "github.com/vplesko/go-wfc/wfc/transform"

// Config collects every argument Init needs. It consolidates the C
// original's init/initEx arity split: Keep and Seed are simply left zero
// when no pre-seeded "keep" region is wanted.
type Config struct {
	// N is the side length of the sliding window patterns are extracted from.
	N int
	// Options controls which D4 transforms are considered and which
	// destination axes are edge-fixed.
	Options Options
	// Source is the image patterns are extracted from.
	Source Grid
	// DestWidth/DestHeight are the shape of the image to synthesize.
	DestWidth, DestHeight int
	// Keep, if non-nil, marks destination cells whose pre-seeded value (in
	// Seed) must be preserved. len(Keep) must equal DestWidth*DestHeight.
	Keep []bool
	// Seed holds pre-seeded destination pixels, required when Keep is set.
	// Its shape matches a Grid of DestWidth x DestHeight x Source.CellSize.
	Seed []byte
	// Hooks supplies the injected RNG (required) and Allocator (optional).
	Hooks Hooks
}

func (cfg Config) validate() error {
	if cfg.N <= 0 {
		return ErrInvalidN
	}
	if err := cfg.Source.validate(); err != nil {
		return err
	}
	if cfg.DestWidth <= 0 || cfg.DestHeight <= 0 {
		return ErrInvalidExtents
	}
	if cfg.N > cfg.Source.Height || cfg.N > cfg.Source.Width ||
		cfg.N > cfg.DestHeight || cfg.N > cfg.DestWidth {
		return ErrInvalidN
	}
	if cfg.Hooks.RNG == nil {
		return ErrNilRNG
	}
	if cfg.Keep != nil {
		if cfg.Seed == nil {
			return ErrKeepRequiresSeed
		}
		if len(cfg.Keep) != cfg.DestWidth*cfg.DestHeight {
			return ErrInvalidKeepShape
		}
		if len(cfg.Seed) != cfg.DestWidth*cfg.DestHeight*cfg.Source.CellSize {
			return ErrNilPixels
		}
	}
	return nil
}

// State is the opaque handle returned by Init. The zero value is not
// usable; only Init and Clone produce valid states.
type State struct {
	n          int
	options    Options
	cellSize   int
	dstH, dstW int

	hooks Hooks

	patterns []pattern
	overlaps overlapTable
	wv       *wave
	pending  *pendingQueue

	everCollapsed  []bool
	collapsedCount int
	status         Status
}

// Init builds the pattern set, overlap table, and initial wave for cfg,
// applies any edge-fix and keep restrictions, runs the first propagation
// pass, and returns the resulting state. It never panics on caller error;
// invalid configuration is reported via the returned error.
func Init(cfg Config) (*State, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	hooks := cfg.Hooks.withDefaults()
	alloc := hooks.Allocator

	patterns := extractPatterns(cfg.N, cfg.Options, cfg.Source)
	overlaps := buildOverlapTable(cfg.N, cfg.Source, patterns, alloc)

	waveRows := cfg.DestHeight
	if cfg.Options.has(EdgeFixV) {
		waveRows = cfg.DestHeight - (cfg.N - 1)
	}
	waveCols := cfg.DestWidth
	if cfg.Options.has(EdgeFixH) {
		waveCols = cfg.DestWidth - (cfg.N - 1)
	}
	if waveRows <= 0 || waveCols <= 0 {
		return nil, ErrInvalidN
	}

	s := &State{
		n:        cfg.N,
		options:  cfg.Options,
		cellSize: cfg.Source.CellSize,
		dstH:     cfg.DestHeight,
		dstW:     cfg.DestWidth,
		hooks:    hooks,
		patterns: patterns,
		overlaps: overlaps,
		wv:       newWave(waveRows, waveCols, len(patterns), alloc),
		pending:  newPendingQueue(waveRows, waveCols, len(patterns)),
	}
	s.everCollapsed = alloc.Bools(waveRows * waveCols)

	s.calcStartWave()
	s.applyEdgeRestriction()
	if cfg.Keep != nil {
		seed := Grid{Width: cfg.DestWidth, Height: cfg.DestHeight, CellSize: cfg.Source.CellSize, Pixels: cfg.Seed}
		s.applyKeepRestriction(cfg.Source, cfg.Keep, seed)
	}
	s.wv.refreshAll()
	s.propagate()
	s.wv.refreshAll()
	s.updateCollapsedCount()
	s.recomputeStatus()
	s.wv.markAllModified()

	return s, nil
}

func (s *State) edgeFixedAcross(r, c int, dir transform.Direction) bool {
	switch dir {
	case transform.RowLess:
		return s.options.has(EdgeFixV) && r == 0
	case transform.RowMore:
		return s.options.has(EdgeFixV) && r == s.wv.rows-1
	case transform.ColLess:
		return s.options.has(EdgeFixH) && c == 0
	default:
		return s.options.has(EdgeFixH) && c == s.wv.cols-1
	}
}

// calcStartWave seeds every support counter from the pattern-pair overlap
// relation (uniform across all wave points, since the initial wave holds
// every pattern present everywhere), substituting a virtual always-present
// neighbour across a fixed edge, and eliminating patterns with no real
// support in a non-fixed direction.
func (s *State) calcStartWave() {
	w := s.wv
	p := len(s.patterns)
	base := s.hooks.Allocator.Int32s(p * transform.DirCount)
	for pi := 0; pi < p; pi++ {
		for dir := transform.Direction(0); dir < transform.DirCount; dir++ {
			base[pi*transform.DirCount+int(dir)] = int32(s.overlaps.countSet(dir, pi))
		}
	}

	for r := 0; r < w.rows; r++ {
		for c := 0; c < w.cols; c++ {
			for pi := 0; pi < p; pi++ {
				for dir := transform.Direction(0); dir < transform.DirCount; dir++ {
					v := base[pi*transform.DirCount+int(dir)]
					if v == 0 && s.edgeFixedAcross(r, c, dir) {
						v = 1
					}
					w.support[w.supportIndex(r, c, pi, dir)] = v
				}
			}
		}
	}

	for r := 0; r < w.rows; r++ {
		for c := 0; c < w.cols; c++ {
			for pi := 0; pi < p; pi++ {
				for dir := transform.Direction(0); dir < transform.DirCount; dir++ {
					if w.support[w.supportIndex(r, c, pi, dir)] == 0 {
						w.eliminate(r, c, pi)
						s.pending.push(r, c, pi)
						break
					}
				}
			}
		}
	}
}

func (s *State) updateCollapsedCount() {
	w := s.wv
	for idx := 0; idx < w.entropyLen; idx++ {
		if w.pattCount[idx] == 1 && !s.everCollapsed[idx] {
			s.everCollapsed[idx] = true
			s.collapsedCount++
		}
	}
}

func (s *State) recomputeStatus() {
	w := s.wv
	allOne := true
	for idx := 0; idx < w.entropyLen; idx++ {
		switch w.pattCount[idx] {
		case 0:
			s.status = StatusFailed
			return
		case 1:
		default:
			allOne = false
		}
	}
	if allOne {
		s.status = StatusCompleted
		return
	}
	s.status = StatusInProgress
}

// Status reports the state's current progress.
func (s *State) Status() Status {
	if s == nil {
		return StatusFailed
	}
	return s.status
}

// PatternCount returns the number of distinct patterns extracted from the
// source.
func (s *State) PatternCount() int {
	return len(s.patterns)
}

// CollapsedCount returns the number of wave points that have ever held
// exactly one present pattern. It is monotone non-decreasing across Step
// calls on the same state, even if a later contradiction drives that
// point's pattern count to zero.
func (s *State) CollapsedCount() int {
	return s.collapsedCount
}

// Step advances the solver by one observation/propagation cycle: recompute
// entropies for cells touched since the last cycle, collapse the
// minimal-entropy cell (breaking ties via the injected RNG), propagate the
// implied eliminations, and recompute status. Once status is no longer
// StatusInProgress, Step is a no-op that returns the final status.
func (s *State) Step() Status {
	if s.status != StatusInProgress {
		return s.status
	}

	s.recomputeEntropies()
	if r, c, ok := s.selectCell(); ok {
		s.collapseCell(r, c)
		s.wv.refreshCell(r, c)
	}
	s.propagate()
	s.wv.refreshAll()
	s.updateCollapsedCount()
	s.recomputeStatus()
	return s.status
}

// destToWave maps a destination cell to the wave point that determines it
// plus the in-pattern offset within that point's window. Multiple
// destination cells may share a wave point when the corresponding axis is
// edge-fixed.
func (s *State) destToWave(row, col int) (wr, wc, offR, offC int) {
	wr = row
	if wr > s.wv.rows-1 {
		wr = s.wv.rows - 1
	}
	wc = col
	if wc > s.wv.cols-1 {
		wc = s.wv.cols - 1
	}
	return wr, wc, row - wr, col - wc
}
