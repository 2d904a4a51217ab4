package wfc

import "testing"

// Mutating a clone never mutates its parent, and vice versa.
func TestCloneIsIndependent(t *testing.T) {
	src := gridFrom(3, 3, []byte{
		0, 1, 0,
		1, 2, 1,
		0, 1, 0,
	})
	cfg := Config{
		N:         2,
		Source:    src,
		DestWidth: 16, DestHeight: 16,
		Hooks: testHooks(61, 62),
	}
	parent, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	clone := parent.Clone()
	parentCollapsed := parent.CollapsedCount()
	parentStatus := parent.Status()

	for clone.Status() == StatusInProgress {
		clone.Step()
	}

	if parent.CollapsedCount() != parentCollapsed {
		t.Errorf("parent.CollapsedCount changed after driving the clone: %d -> %d", parentCollapsed, parent.CollapsedCount())
	}
	if parent.Status() != parentStatus {
		t.Errorf("parent.Status changed after driving the clone: %v -> %v", parentStatus, parent.Status())
	}

	// And the reverse: stepping the parent afterwards must not perturb the
	// already-terminal clone.
	cloneStatus := clone.Status()
	cloneCollapsed := clone.CollapsedCount()
	parent.Step()
	if clone.Status() != cloneStatus || clone.CollapsedCount() != cloneCollapsed {
		t.Error("stepping the parent mutated the clone")
	}
}

func TestCloneSharesImmutablePatternsAndOverlaps(t *testing.T) {
	src := gridFrom(3, 3, []byte{
		0, 1, 0,
		1, 2, 1,
		0, 1, 0,
	})
	cfg := Config{
		N:         2,
		Source:    src,
		DestWidth: 16, DestHeight: 16,
		Hooks: testHooks(71, 72),
	}
	parent, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	clone := parent.Clone()
	if clone.PatternCount() != parent.PatternCount() {
		t.Errorf("clone.PatternCount() = %d, want %d", clone.PatternCount(), parent.PatternCount())
	}
	if &clone.patterns[0] != &parent.patterns[0] {
		t.Error("clone does not share the parent's pattern list")
	}
	if &clone.overlaps.bits[0] != &parent.overlaps.bits[0] {
		t.Error("clone does not share the parent's overlap table")
	}
}
