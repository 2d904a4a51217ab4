package wfc

// Generate runs a full Init-then-Step-to-completion cycle and blits the
// result into dst in one call, for callers that don't need incremental
// control or mid-run introspection. It consolidates the C original's
// generate/generateEx arity split the same way Init consolidates
// init/initEx: cfg.Keep selects the seeded variant.
//
// dst must have length cfg.DestWidth*cfg.DestHeight*cfg.Source.CellSize.
// When cfg.Keep is set, dst is also read as the seed buffer before any
// writes happen, so the same slice serves as both input and output.
func Generate(cfg Config, dst []byte) (Status, error) {
	if cfg.Keep != nil {
		cfg.Seed = dst
	}

	s, err := Init(cfg)
	if err != nil {
		return StatusFailed, err
	}

	for s.Status() == StatusInProgress {
		s.Step()
	}

	if s.Status() != StatusCompleted {
		return s.Status(), nil
	}
	if err := s.Blit(cfg.Source, dst); err != nil {
		return StatusFailed, err
	}
	return StatusCompleted, nil
}
