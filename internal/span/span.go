// Package span implements the biased 64-bit span key (§3) and the
// Minkowski-style region widener (§4.5): repeated union of the span
// set with shifted copies of itself over a discretized half-disk.
package span

import (
	"math"

	"github.com/maxgubler/subraster/internal/basics"
)

// Span is a half-open horizontal interval [First.x, Second.x) on row
// First.y (First.y == Second.y always holds). Both halves carry the
// row's y in their high 32 bits and basics.SpanBias added to keep
// later signed-offset arithmetic inside the unsigned domain; see
// basics.SpanBias.
type Span struct {
	First, Second basics.Int64u
}

// NewSpan packs a row y and half-open column range [x1,x2) into a Span.
func NewSpan(y int64, x1, x2 int32) Span {
	row := basics.Int64u(y) << 32
	return Span{
		First:  row + basics.Int64u(uint32(x1)) + basics.SpanBias,
		Second: row + basics.Int64u(uint32(x2)) + basics.SpanBias,
	}
}

// Y extracts the row from either half of the key.
func (s Span) Y() int64 {
	return int64(s.First>>32) - 0x40000000
}

// X1 extracts the starting column.
func (s Span) X1() int32 {
	return int32(uint32(s.First) - 0x40000000)
}

// X2 extracts the ending column (exclusive).
func (s Span) X2() int32 {
	return int32(uint32(s.Second) - 0x40000000)
}

// Set is a sorted, disjoint sequence of spans, ascending by (y, x1).
// Within a single row the spans are sorted by x1 and never overlap
// (per spec.md's span-disjointness invariant); abutting spans may
// remain separate entries.
type Set []Span

// overlapRegion implements the original's _OverlapRegion: dst becomes
// the union of dst and (src shifted by (dx,dy)), where the shift is
// folded directly into the 64-bit keys so row and column move in one
// addition. offset1 is applied to every span's start, offset2 to every
// span's end - they differ by 2*dx so a span widens as well as moves,
// which is exactly what unioning a base outline with a disk sample at
// (dx,dy) needs to do.
func overlapRegion(dst, src Set, dx, dy int32) Set {
	// Wrapping 64-bit arithmetic reproduces the original's "unsigned
	// __int64 offset = (dy<<32) - dx" trick: even though dy may be
	// negative and dx may exceed dy<<32 in magnitude, the subtraction
	// wraps consistently and un-wraps correctly when later added back
	// to another biased key.
	offset1 := basics.Int64u(int64(dy)<<32 - int64(dx))
	offset2 := basics.Int64u(int64(dy)<<32 + int64(dx))

	out := make(Set, 0, len(dst)+len(src))
	a, b := dst, src
	ai, bi := 0, 0

	for ai < len(a) && bi < len(b) {
		bFirst := b[bi].First + offset1
		if bFirst < a[ai].First {
			x1 := bFirst
			x2 := b[bi].Second + offset2
			bi++
			for {
				for ai < len(a) && a[ai].First <= x2 {
					if a[ai].Second > x2 {
						x2 = a[ai].Second
					}
					ai++
				}
				if bi >= len(b) || b[bi].First+offset1 > x2 {
					break
				}
				for bi < len(b) && b[bi].First+offset1 <= x2 {
					if v := b[bi].Second + offset2; v > x2 {
						x2 = v
					}
					bi++
				}
				if ai >= len(a) || a[ai].First > x2 {
					break
				}
			}
			out = append(out, Span{x1, x2})
		} else {
			x1 := a[ai].First
			x2 := a[ai].Second
			ai++
			for {
				for bi < len(b) && b[bi].First+offset1 <= x2 {
					if v := b[bi].Second + offset2; v > x2 {
						x2 = v
					}
					bi++
				}
				if ai >= len(a) || a[ai].First > x2 {
					break
				}
				for ai < len(a) && a[ai].First <= x2 {
					if a[ai].Second > x2 {
						x2 = a[ai].Second
					}
					ai++
				}
				if bi >= len(b) || b[bi].First+offset1 > x2 {
					break
				}
			}
			out = append(out, Span{x1, x2})
		}
	}
	for ; ai < len(a); ai++ {
		out = append(out, a[ai])
	}
	for ; bi < len(b); bi++ {
		out = append(out, Span{b[bi].First + offset1, b[bi].Second + offset2})
	}
	return out
}

// Widen implements CreateWidenedRegion (§4.5): the Minkowski sum of
// base with a half-disk of radii (rx, ry), realized as repeated union
// of base shifted to each integer row of the disk. Negative radii
// clamp to 0; rx==ry==0 returns an empty set (no widening requested).
func Widen(base Set, rx, ry int32) Set {
	if rx < 0 {
		rx = 0
	}
	if ry < 0 {
		ry = 0
	}
	var wide Set
	switch {
	case ry > 0:
		fry := float64(ry)
		frx := float64(rx)
		for y := -ry; y <= ry; y++ {
			fy := float64(y)
			x := int32(math.Floor(0.5 + math.Sqrt(fry*fry-fy*fy)*frx/fry))
			wide = overlapRegion(wide, base, x, y)
		}
	case rx > 0: // ry == 0
		// A single overlap at the same row leaves a thin gap artifact;
		// two overlaps are required even though the shift is identical.
		wide = overlapRegion(wide, base, rx, 0)
		wide = overlapRegion(wide, base, rx, 0)
	}
	return wide
}
