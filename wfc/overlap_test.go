package wfc

import (
	"testing"

	"github.com/vplesko/go-wfc/wfc/transform"
)

func TestOverlapTableGetSetRoundtrip(t *testing.T) {
	tab := newOverlapTable(130, defaultAllocator{}) // exercises more than one word per row
	tab.set(transform.RowLess, 0, 129, true)
	if !tab.get(transform.RowLess, 0, 129) {
		t.Error("expected bit 129 of row 0 to be set")
	}
	if tab.get(transform.RowLess, 0, 128) {
		t.Error("bit 128 must remain unset")
	}
	tab.set(transform.RowLess, 0, 129, false)
	if tab.get(transform.RowLess, 0, 129) {
		t.Error("expected bit 129 to clear")
	}
}

func TestOverlapTableCountSet(t *testing.T) {
	tab := newOverlapTable(5, defaultAllocator{})
	for b := 0; b < 5; b++ {
		tab.set(transform.ColMore, 2, b, b%2 == 0)
	}
	if got := tab.countSet(transform.ColMore, 2); got != 3 {
		t.Errorf("countSet = %d, want 3", got)
	}
}

func TestBuildOverlapTableN1AllCompatible(t *testing.T) {
	src := checkerGrid(3, 3)
	patts := extractPatterns(1, 0, src)
	tab := buildOverlapTable(1, src, patts, defaultAllocator{})
	for dir := transform.Direction(0); dir < transform.DirCount; dir++ {
		for a := range patts {
			if tab.countSet(dir, a) != len(patts) {
				t.Errorf("dir %d pattern %d: countSet = %d, want %d (1x1 overlap is vacuous)", dir, a, tab.countSet(dir, a), len(patts))
			}
		}
	}
}

func TestOverlapMatchesSelfOnUniformSource(t *testing.T) {
	// A constant-valued source is periodic under any shift, so every
	// extracted pattern must be self-compatible in every direction.
	px := make([]byte, 16)
	for i := range px {
		px[i] = 7
	}
	src := Grid{Width: 4, Height: 4, CellSize: 1, Pixels: px}
	patts := extractPatterns(2, 0, src)
	for dir := transform.Direction(0); dir < transform.DirCount; dir++ {
		for _, p := range patts {
			if !overlapMatches(2, src, dir, p, p) {
				t.Errorf("pattern must overlap-match itself in direction %d on a uniform source", dir)
			}
		}
	}
}

func TestOverlapMatchesDetectsMismatch(t *testing.T) {
	src := checkerGrid(4, 4)
	patts := extractPatterns(2, 0, src)
	if len(patts) != 2 {
		t.Fatalf("expected 2 distinct patterns, got %d", len(patts))
	}
	// Shifting a checkerboard pattern by one row always flips parity, so a
	// pattern is never compatible with itself going RowLess/RowMore, but it
	// is always compatible with the other (opposite-parity) pattern.
	if overlapMatches(2, src, transform.RowLess, patts[0], patts[0]) {
		t.Error("checkerboard pattern must not be row-adjacent-compatible with itself")
	}
	if !overlapMatches(2, src, transform.RowLess, patts[0], patts[1]) {
		t.Error("checkerboard pattern must be row-adjacent-compatible with the opposite-parity pattern")
	}
}
