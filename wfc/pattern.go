package wfc

import "github.com/vplesko/go-wfc/wfc/transform"

// pattern is a logical NxN window into the source image, identified by an
// anchor and an orientation rather than a materialized copy of its pixels.
type pattern struct {
	anchorRow, anchorCol int
	tag                  transform.Tag
	edge                 transform.EdgeFlags
	freq                 int
}

func (p pattern) cell(n int, src Grid, i, j int) []byte {
	sr, sc := transform.ToSource(n, p.tag, p.anchorRow, p.anchorCol, i, j, src.Height, src.Width)
	return src.Cell(sr, sc)
}

func (p pattern) cellsEqual(n int, src Grid, q pattern) bool {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := p.cell(n, src, i, j)
			b := q.cell(n, src, i, j)
			for k := range a {
				if a[k] != b[k] {
					return false
				}
			}
		}
	}
	return true
}

func (p pattern) satisfiesOptions(n int, opts Options, src Grid) bool {
	if p.tag&transform.FlipRow != 0 && !opts.has(FlipV) {
		return false
	}
	if p.tag&transform.FlipCol != 0 && !opts.has(FlipH) {
		return false
	}
	if p.tag&(transform.Rot90|transform.Rot180) != 0 && !opts.has(Rotate) {
		return false
	}
	if opts.has(EdgeFixV) && p.anchorRow+n > src.Height {
		return false
	}
	if opts.has(EdgeFixH) && p.anchorCol+n > src.Width {
		return false
	}
	return true
}

// extractPatterns enumerates every (anchor, transform) combination allowed
// by opts, deduplicates by byte-equal transformed pixel content, and
// returns the unique pattern list with summed frequencies and OR-merged
// edge flags. Deduplication is the deliberate O(K²·N²·B) comparison the
// component design calls for: K and N are expected small.
func extractPatterns(n int, opts Options, src Grid) []pattern {
	var out []pattern
	for anchorRow := 0; anchorRow < src.Height; anchorRow++ {
		for anchorCol := 0; anchorCol < src.Width; anchorCol++ {
			srcEdge := transform.SourceEdgeFlags(anchorRow, anchorCol, n, src.Height, src.Width)
			for tag := transform.Tag(0); tag < transform.Count; tag++ {
				cand := pattern{
					anchorRow: anchorRow,
					anchorCol: anchorCol,
					tag:       tag,
					edge:      srcEdge.ToPattern(tag),
					freq:      1,
				}
				if !cand.satisfiesOptions(n, opts, src) {
					continue
				}
				fused := false
				for i := range out {
					if out[i].cellsEqual(n, src, cand) {
						out[i].edge = out[i].edge.Or(cand.edge)
						out[i].freq++
						fused = true
						break
					}
				}
				if !fused {
					out = append(out, cand)
				}
			}
		}
	}
	return out
}
