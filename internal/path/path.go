// Package path owns the incoming vertex arrays the rasterizer consumes:
// a byte type-code per vertex and an integer (x,y) per vertex in units
// of 1/8 pixel. It has no rasterization logic of its own.
package path

// Command is the per-vertex type code. CloseFigure is an OR-able flag,
// not a distinct command.
type Command byte

const (
	MoveTo         Command = iota // begin a new subpath, closing the previous one
	MoveToNoClose                 // begin a new subpath without closing the previous one
	LineTo                        // straight segment to this vertex
	CurveTo                       // cubic Bezier; this vertex and the next two are the 3 controls after the pen
	BSplineTo                     // cubic uniform B-spline; same 3-control convention as CurveTo
	BSplinePatchTo                // B-spline continuation; reuses the tail of the previous segment
)

// CloseFigure is OR-ed into a MoveTo/LineTo command to mark the end of
// a subpath. The scan converter treats it as advisory (see Path.Close).
const CloseFigure Command = 0x80

// Vertex is one (type, point) pair in the path.
type Vertex struct {
	Type Command
	X, Y int32
}

// Path is an ordered sequence of vertices. External collaborators
// (font/text layout) build it; edge.Rasterizer consumes it once via
// ScanConvert and the source is then free to be cleared or discarded.
type Path struct {
	Verts []Vertex
}

// New returns an empty Path ready for appending.
func New() *Path {
	return &Path{}
}

// Clear drops all vertices, retaining the underlying storage.
func (p *Path) Clear() {
	p.Verts = p.Verts[:0]
}

// MoveTo starts a new subpath at (x, y), closing the previous one with
// an implicit line back to its start (the scan converter performs the
// actual closing line; here we only record the command).
func (p *Path) MoveTo(x, y int32) {
	p.Verts = append(p.Verts, Vertex{MoveTo, x, y})
}

// MoveToNoClose starts a new subpath without closing the previous one.
func (p *Path) MoveToNoClose(x, y int32) {
	p.Verts = append(p.Verts, Vertex{MoveToNoClose, x, y})
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y int32) {
	p.Verts = append(p.Verts, Vertex{LineTo, x, y})
}

// Close marks the most recently appended vertex as closing its figure.
// CLOSE_FIGURE is advisory: the scan converter always synthesizes the
// closing line at the next MoveTo boundary regardless of this flag.
func (p *Path) Close() {
	if len(p.Verts) == 0 {
		return
	}
	p.Verts[len(p.Verts)-1].Type |= CloseFigure
}

// CurveTo appends a cubic Bezier curve. The curve's starting point is
// the path's current pen position (the previous vertex); (x1,y1),
// (x2,y2) are the two interior control points and (x3,y3) is the end
// point. Four points total participate in the curve (the implicit
// current point plus these three), matching PT_BEZIERTO's convention
// of consuming 3 control points after the pen.
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 int32) {
	p.Verts = append(p.Verts,
		Vertex{CurveTo, x1, y1},
		Vertex{CurveTo, x2, y2},
		Vertex{CurveTo, x3, y3},
	)
}

// BSplineTo appends a cubic uniform B-spline segment with the same
// three-control-point convention as CurveTo.
func (p *Path) BSplineTo(x1, y1, x2, y2, x3, y3 int32) {
	p.Verts = append(p.Verts,
		Vertex{BSplineTo, x1, y1},
		Vertex{BSplineTo, x2, y2},
		Vertex{BSplineTo, x3, y3},
	)
}

// BSplinePatchTo appends a single-point continuation of the previous
// B-spline segment: the curve's four controls are the preceding three
// vertices plus this one.
func (p *Path) BSplinePatchTo(x, y int32) {
	p.Verts = append(p.Verts, Vertex{BSplinePatchTo, x, y})
}

// Append copies src's vertices onto the end of p, translating every
// point by (dx, dy). This is how multiple glyph outlines are combined
// into one path before a single ScanConvert call, taking the place of
// the original's PartialBeginPath/PartialEndPath pair.
func (p *Path) Append(src *Path, dx, dy int32) {
	base := len(p.Verts)
	p.Verts = append(p.Verts, src.Verts...)
	for i := base; i < len(p.Verts); i++ {
		p.Verts[i].X += dx
		p.Verts[i].Y += dy
	}
}

