package wfc

import "testing"

func completedState(t *testing.T) (*State, Grid) {
	t.Helper()
	src := gridFrom(4, 4, []byte{5, 6, 5, 6, 6, 5, 6, 5, 5, 5, 6, 6, 6, 6, 5, 5})
	cfg := Config{
		N:         1,
		Source:    src,
		DestWidth: 8, DestHeight: 8,
		Hooks: testHooks(81, 82),
	}
	s, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for s.Status() == StatusInProgress {
		s.Step()
	}
	if s.Status() != StatusCompleted {
		t.Fatalf("status = %v, want Completed", s.Status())
	}
	return s, src
}

func TestPatternPresentAtOutOfRange(t *testing.T) {
	s, _ := completedState(t)
	cases := []struct {
		name    string
		p, x, y int
	}{
		{"negative pattern", -1, 0, 0},
		{"pattern too large", s.PatternCount(), 0, 0},
		{"negative x", 0, -1, 0},
		{"x too large", 0, 8, 0},
		{"negative y", 0, 0, -1},
		{"y too large", 0, 0, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.PatternPresentAt(tc.p, tc.x, tc.y); err == nil {
				t.Errorf("PatternPresentAt(%d,%d,%d) returned nil error, want ErrIndexOutOfRange", tc.p, tc.x, tc.y)
			}
		})
	}
}

func TestPatternPresentAtCompletedHasExactlyOne(t *testing.T) {
	s, _ := completedState(t)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			n := 0
			for p := 0; p < s.PatternCount(); p++ {
				present, err := s.PatternPresentAt(p, x, y)
				if err != nil {
					t.Fatalf("PatternPresentAt(%d,%d,%d): %v", p, x, y, err)
				}
				if present {
					n++
				}
			}
			if n != 1 {
				t.Errorf("(%d,%d) has %d present patterns, want exactly 1 for a Completed state", x, y, n)
			}
		}
	}
}

func TestModifiedAtOutOfRange(t *testing.T) {
	s, _ := completedState(t)
	if _, err := s.ModifiedAt(-1, 0); err == nil {
		t.Error("ModifiedAt(-1,0) returned nil error")
	}
	if _, err := s.ModifiedAt(0, 8); err == nil {
		t.Error("ModifiedAt(0,8) returned nil error")
	}
}

func TestPixelToBlitAtMatchesBlit(t *testing.T) {
	s, src := completedState(t)
	dst := make([]byte, 8*8)
	if err := s.Blit(src, dst); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			chosen := -1
			for p := 0; p < s.PatternCount(); p++ {
				present, _ := s.PatternPresentAt(p, x, y)
				if present {
					chosen = p
					break
				}
			}
			if chosen < 0 {
				t.Fatalf("no present pattern at (%d,%d)", x, y)
			}
			cell, err := s.PixelToBlitAt(src, chosen, x, y)
			if err != nil {
				t.Fatalf("PixelToBlitAt: %v", err)
			}
			if cell[0] != dst[y*8+x] {
				t.Errorf("PixelToBlitAt(%d,%d,%d) = %d, want %d (matching Blit)", chosen, x, y, cell[0], dst[y*8+x])
			}
		}
	}
}

func TestPixelToBlitAtWorksRegardlessOfStatus(t *testing.T) {
	src := gridFrom(3, 3, []byte{
		0, 1, 0,
		1, 2, 1,
		0, 1, 0,
	})
	cfg := Config{
		N:         2,
		Source:    src,
		DestWidth: 16, DestHeight: 16,
		Hooks: testHooks(91, 92),
	}
	s, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	// Still in progress: PixelToBlitAt must work without requiring Completed.
	if _, err := s.PixelToBlitAt(src, 0, 0, 0); err != nil {
		t.Fatalf("PixelToBlitAt on an in-progress state: %v", err)
	}
}
