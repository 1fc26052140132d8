// Package edge builds the per-scanline edge lists from a flattened
// path and scan-converts them into spans using the non-zero winding
// rule. It is the Go counterpart of the original's _EvaluateLine and
// ScanConvert, split into a small arena type (Rasterizer) and its two
// phases: edge building and scan conversion.
package edge

import (
	"sort"

	"github.com/maxgubler/subraster/internal/curve"
	"github.com/maxgubler/subraster/internal/path"
	"github.com/maxgubler/subraster/internal/span"
)

const initialEdgeHeap = 2048

// Edge is one entry in a scanline's singly-linked list. PosAndFlag
// packs the sub-pixel x as x<<1 with bit 0 set for a downward
// (opening) edge, clear for an upward (closing) one.
type Edge struct {
	Next       uint32
	PosAndFlag int32
}

// Rasterizer owns the edge arena and per-row head-index buffer. A
// fresh arena is allocated on every ScanConvert call, mirroring the
// original's per-call malloc/free of mpEdgeBuffer and mpScanBuffer.
// Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	edges []Edge   // index 0 is the sentinel; never referenced by a valid chain
	scan  []uint32 // head index per output row

	firstX, firstY int32
	penX, penY     int32
	havePen        bool
}

// NewRasterizer returns a Rasterizer ready for ScanConvert calls.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

func (r *Rasterizer) reset(height int) {
	r.edges = make([]Edge, 1, initialEdgeHeap)
	r.scan = make([]uint32, height)
	r.havePen = false
}

func (r *Rasterizer) reserve(n int) {
	for len(r.edges)+n > cap(r.edges) {
		grown := make([]Edge, len(r.edges), cap(r.edges)*2)
		copy(grown, r.edges)
		r.edges = grown
	}
}

func (r *Rasterizer) appendEdge(iy int, x int32, downward bool) {
	posAndFlag := x * 2
	if downward {
		posAndFlag++
	}
	idx := uint32(len(r.edges))
	r.edges = append(r.edges, Edge{Next: r.scan[iy], PosAndFlag: posAndFlag})
	r.scan[iy] = idx
}

// line is the geometric core of _EvaluateLine: given integer endpoints
// in 1/8-px units, it appends one edge per output scanline the segment
// crosses. Zero-length and purely horizontal segments contribute no
// edges.
func (r *Rasterizer) line(x0, y0, x1, y1 int32) {
	switch {
	case y1 > y0:
		r.descend(x0, y0, x1, y1, true)
	case y1 < y0:
		r.descend(x1, y1, x0, y0, false)
	}
}

// descend handles both directions of _EvaluateLine's down/up branches:
// (xlo,ylo) is always the smaller-y endpoint. downward records which
// of the original's two branches this is, deciding the opening/closing
// flag on the emitted edges.
func (r *Rasterizer) descend(xlo, ylo, xhi, yhi int32, downward bool) {
	dy := yhi - ylo
	y := ((ylo + 3) &^ 7) + 4
	iy := int(y >> 3)
	lastRow := int((yhi - 5) >> 3)
	if iy > lastRow {
		return
	}

	xacc := int64(xlo) << 13
	invslope := (int64(xhi-xlo) << 16) / int64(dy)
	xacc += (invslope * int64(y-ylo)) >> 3

	r.reserve(lastRow + 1 - iy)
	for ; iy <= lastRow; iy++ {
		x := int32((xacc + 0x8000) >> 16)
		r.appendEdge(iy, x, downward)
		xacc += invslope
	}
}

// advance emits a segment from the current pen to (x, y) and moves the
// pen there, recording the subpath's start point the first time it is
// called after a MoveTo.
func (r *Rasterizer) advance(x, y int32) {
	if !r.havePen {
		r.firstX, r.firstY = r.penX, r.penY
		r.havePen = true
	}
	r.line(r.penX, r.penY, x, y)
	r.penX, r.penY = x, y
}

// closeSubpath synthesizes the implicit closing line back to the
// subpath's start if the pen hasn't already returned there. Every path
// provider is assumed to leave CLOSE_FIGURE unset or inconsistent, so
// this runs unconditionally at every MoveTo boundary and at the end of
// the path, per §6's "CLOSE_FIGURE is advisory".
func (r *Rasterizer) closeSubpath() {
	if r.havePen && (r.firstX != r.penX || r.firstY != r.penY) {
		r.line(r.penX, r.penY, r.firstX, r.firstY)
	}
}

// ScanConvert implements §4.4: compute the translated bounding box,
// walk the path emitting edges for every line and flattened curve
// segment, closing each subpath at MoveTo boundaries, then sort and
// sweep every row's edges to emit spans under the non-zero winding
// rule. It returns the body span set, its width and height in span
// units (eight per overlay cell), and the (offsetX, offsetY)
// translation applied to the path - the
// overlay builder records these as its own origin.
func (r *Rasterizer) ScanConvert(p *path.Path) (result span.Set, width, height, offsetX, offsetY int, err error) {
	if len(p.Verts) == 0 {
		return nil, 0, 0, 0, 0, path.ErrEmptyPath
	}

	minX, minY := int32(1<<30), int32(1<<30)
	maxX, maxY := int32(-(1 << 30)), int32(-(1 << 30))
	for _, v := range p.Verts {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	minX = (minX >> 3) &^ 7
	minY = (minY >> 3) &^ 7
	maxX = (maxX + 7) >> 3
	maxY = (maxY + 7) >> 3
	if minX > maxX || minY > maxY {
		return nil, 0, 0, 0, 0, path.ErrEmptyPath
	}

	w := int(maxX + 1 - minX)
	h := int(maxY + 1 - minY)
	r.reset(h)
	dx, dy := -minX*8, -minY*8

	flatten := func(c curve.Cubic) {
		c.Flatten(func(fx, fy float64) {
			r.advance(int32(fx), int32(fy))
		})
	}

	verts := p.Verts
	for i := 0; i < len(verts); i++ {
		v := verts[i]
		x, y := v.X+dx, v.Y+dy
		switch v.Type &^ path.CloseFigure {
		case path.MoveTo:
			r.closeSubpath()
			r.havePen = false
			r.penX, r.penY = x, y
		case path.MoveToNoClose:
			r.havePen = false
			r.penX, r.penY = x, y
		case path.LineTo:
			r.advance(x, y)
		case path.CurveTo, path.BSplineTo:
			if i+2 >= len(verts) {
				continue
			}
			c1, c2, end := verts[i], verts[i+1], verts[i+2]
			p0x, p0y := float64(r.penX), float64(r.penY)
			if v.Type&^path.CloseFigure == path.BSplineTo {
				flatten(curve.BSplineToMonomial(p0x, p0y,
					float64(c1.X+dx), float64(c1.Y+dy),
					float64(c2.X+dx), float64(c2.Y+dy),
					float64(end.X+dx), float64(end.Y+dy)))
			} else {
				flatten(curve.BezierToMonomial(p0x, p0y,
					float64(c1.X+dx), float64(c1.Y+dy),
					float64(c2.X+dx), float64(c2.Y+dy),
					float64(end.X+dx), float64(end.Y+dy)))
			}
			i += 2
		case path.BSplinePatchTo:
			if i < 3 {
				continue
			}
			p0, p1, p2 := verts[i-3], verts[i-2], verts[i-1]
			flatten(curve.BSplineToMonomial(
				float64(p0.X+dx), float64(p0.Y+dy),
				float64(p1.X+dx), float64(p1.Y+dy),
				float64(p2.X+dx), float64(p2.Y+dy),
				float64(x), float64(y)))
		}
	}
	r.closeSubpath()

	result = make(span.Set, 0, len(r.edges)/2)
	heap := make([]int32, 0, 16)
	for row := 0; row < h; row++ {
		heap = heap[:0]
		for ptr := r.scan[row]; ptr != 0; ptr = r.edges[ptr].Next {
			heap = append(heap, r.edges[ptr].PosAndFlag)
		}
		sort.Slice(heap, func(a, b int) bool { return heap[a] < heap[b] })

		count := 0
		var x1 int32
		for _, x := range heap {
			if count == 0 {
				x1 = x >> 1
			}
			if x&1 != 0 {
				count++
			} else {
				count--
			}
			if count == 0 {
				if x2 := x >> 1; x2 > x1 {
					result = append(result, span.NewSpan(int64(row), x1, x2))
				}
			}
		}
	}

	return result, w, h, int(minX), int(minY), nil
}
