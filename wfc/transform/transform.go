// Package transform implements the dihedral-group (D4) coordinate and
// edge-flag mappings used to read a pattern's pixels through its source
// window without ever materializing a rotated or mirrored copy of them.
package transform

// Tag is a 4-bit flag set selecting one of the sixteen D4 orientations a
// pattern may be read through. Bits combine independently; Rot270 is not a
// fifth primitive but the bitwise union of Rot90 and Rot180.
type Tag uint8

const (
	FlipRow Tag = 1 << iota // mirror across the horizontal axis (row index reversed)
	FlipCol                 // mirror across the vertical axis (column index reversed)
	Rot90                   // rotate 90 degrees
	Rot180                  // rotate 180 degrees

	Rot270 = Rot90 | Rot180

	// Count is the number of distinct tag values (2^4).
	Count = 16
)

// Direction is one of the four cardinal neighbour directions of a wave point.
type Direction uint8

const (
	RowLess Direction = iota // -row (north)
	RowMore                  // +row (south)
	ColLess                  // -col (west)
	ColMore                  // +col (east)

	DirCount = 4
)

// Opposite returns the direction that undoes a step in d.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Offset returns the (row, col) delta a step in d applies.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case RowLess:
		return -1, 0
	case RowMore:
		return 1, 0
	case ColLess:
		return 0, -1
	default:
		return 0, 1
	}
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// ToSource maps a pattern-local cell (i, j), 0<=i,j<n, to the source cell it
// reads through the pattern anchored at (anchorRow, anchorCol) under tag,
// wrapping modulo the source extents. Order matters: flips are applied
// before rotations, and rot90 before rot180, matching the inverse mapping
// EdgeFlags.ToPattern undoes.
func ToSource(n int, tag Tag, anchorRow, anchorCol, i, j, srcH, srcW int) (sr, sc int) {
	if tag&FlipRow != 0 {
		i = n - 1 - i
	}
	if tag&FlipCol != 0 {
		j = n - 1 - j
	}
	if tag&Rot90 != 0 {
		i, j = j, n-1-i
	}
	if tag&Rot180 != 0 {
		i, j = n-1-i, n-1-j
	}
	return wrap(anchorRow+i, srcH), wrap(anchorCol+j, srcW)
}

// EdgeFlags records, for a pattern in its own orientation, whether each of
// its four logical edges may legally touch the corresponding output edge.
type EdgeFlags struct {
	LoRow, HiRow bool
	LoCol, HiCol bool
}

// Or merges two edge-flag sets (used when two raw candidates fuse into one
// deduplicated pattern).
func (e EdgeFlags) Or(o EdgeFlags) EdgeFlags {
	return EdgeFlags{
		LoRow: e.LoRow || o.LoRow,
		HiRow: e.HiRow || o.HiRow,
		LoCol: e.LoCol || o.LoCol,
		HiCol: e.HiCol || o.HiCol,
	}
}

// SourceEdgeFlags reports whether the anchor of an NxN window touches the
// low/high edge of each source axis.
func SourceEdgeFlags(anchorRow, anchorCol, n, srcH, srcW int) EdgeFlags {
	return EdgeFlags{
		LoRow: anchorRow == 0,
		HiRow: anchorRow+n == srcH,
		LoCol: anchorCol == 0,
		HiCol: anchorCol+n == srcW,
	}
}

// ToPattern maps source-space edge-touch flags into pattern-space edge
// flags for the given tag. This is the literal inverse of the coordinate
// order ToSource applies: undo rot180 first, then rot90, then the column
// flip, then the row flip.
func (e EdgeFlags) ToPattern(tag Tag) EdgeFlags {
	if tag&Rot180 != 0 {
		e.LoRow, e.HiRow = e.HiRow, e.LoRow
		e.LoCol, e.HiCol = e.HiCol, e.LoCol
	}
	if tag&Rot90 != 0 {
		loRow, hiRow, loCol, hiCol := e.LoRow, e.HiRow, e.LoCol, e.HiCol
		e.LoRow, e.HiRow, e.LoCol, e.HiCol = hiCol, loCol, loRow, hiRow
	}
	if tag&FlipCol != 0 {
		e.LoCol, e.HiCol = e.HiCol, e.LoCol
	}
	if tag&FlipRow != 0 {
		e.LoRow, e.HiRow = e.HiRow, e.LoRow
	}
	return e
}

// Touches reports whether the pattern's edge flag for the side that
// direction d points toward is set, i.e. whether this pattern may legally
// sit at the boundary crossed by d.
func (e EdgeFlags) Touches(d Direction) bool {
	switch d {
	case RowLess:
		return e.LoRow
	case RowMore:
		return e.HiRow
	case ColLess:
		return e.LoCol
	default:
		return e.HiCol
	}
}
