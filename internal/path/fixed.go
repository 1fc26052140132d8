package path

import "golang.org/x/image/math/fixed"

// fixedToNative converts a 26.6 fixed-point coordinate (1/64 px, the
// unit golang.org/x/image/font and other x/image consumers flatten
// glyph outlines in) down to this module's native 1/8 px grid.
func fixedToNative(v fixed.Int26_6) int32 {
	// v is in 1/64 px; round to nearest 1/8 px (divide by 8, round).
	const shift = 3 // log2(64/8)
	half := fixed.Int26_6(1) << (shift - 1)
	if v >= 0 {
		return int32((v + half) >> shift)
	}
	return -int32((-v + half) >> shift)
}

// MoveToFixed is MoveTo for callers holding x/image 26.6 fixed-point
// coordinates.
func (p *Path) MoveToFixed(pt fixed.Point26_6) {
	p.MoveTo(fixedToNative(pt.X), fixedToNative(pt.Y))
}

// LineToFixed is LineTo for callers holding x/image 26.6 fixed-point
// coordinates.
func (p *Path) LineToFixed(pt fixed.Point26_6) {
	p.LineTo(fixedToNative(pt.X), fixedToNative(pt.Y))
}

// CurveToFixed is CurveTo for callers holding x/image 26.6 fixed-point
// control points.
func (p *Path) CurveToFixed(c1, c2, end fixed.Point26_6) {
	p.CurveTo(
		fixedToNative(c1.X), fixedToNative(c1.Y),
		fixedToNative(c2.X), fixedToNative(c2.Y),
		fixedToNative(end.X), fixedToNative(end.Y),
	)
}
