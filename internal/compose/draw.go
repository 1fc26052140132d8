package compose

import (
	"encoding/binary"

	"github.com/maxgubler/subraster/internal/basics"
	"github.com/maxgubler/subraster/internal/overlay"
)

// Draw blends ov into dst at (xsub, ysub), clipped to clip, using runs
// for per-column color and mask as an optional external clip alpha.
// body and border select which overlay planes contribute; at least one
// must be true or Draw returns an empty rectangle. This is the scalar
// reference path (§4.10); DrawWide processes the same pixels in
// groups of four using the same arithmetic.
func Draw(dst Surface, ov *overlay.Overlay, clip basics.Rect, mask *AlphaMask, xsub, ysub int, runs ColorRuns, body, border bool) basics.Rect {
	return draw(dst, ov, clip, mask, xsub, ysub, runs, body, border, blendRowScalar)
}

// DrawWide is the batched variant of Draw: identical output, grouped
// per-pixel arithmetic instead of one pixel at a time.
func DrawWide(dst Surface, ov *overlay.Overlay, clip basics.Rect, mask *AlphaMask, xsub, ysub int, runs ColorRuns, body, border bool) basics.Rect {
	return draw(dst, ov, clip, mask, xsub, ysub, runs, body, border, blendRowWide)
}

type rowBlender func(row []byte, bpp int, alpha []byte, runs ColorRuns, xOrigin int)

func draw(dst Surface, ov *overlay.Overlay, clip basics.Rect, mask *AlphaMask, xsub, ysub int, runs ColorRuns, body, border bool, blend rowBlender) basics.Rect {
	if ov == nil || len(runs) == 0 || (!body && !border) {
		return basics.Rect{}
	}

	surfaceBounds := basics.Rect{X2: dst.Width, Y2: dst.Height}
	r := clip.Intersect(surfaceBounds)

	x := (xsub + ov.OffsetX + 4) >> 3
	y := (ysub + ov.OffsetY + 4) >> 3
	w := ov.Width
	h := ov.Height
	xo, yo := 0, 0

	if x < r.X1 {
		xo = r.X1 - x
		w -= xo
		x = r.X1
	}
	if y < r.Y1 {
		yo = r.Y1 - y
		h -= yo
		y = r.Y1
	}
	if x+w > r.X2 {
		w = r.X2 - x
	}
	if y+h > r.Y2 {
		h = r.Y2 - y
	}
	if w <= 0 || h <= 0 {
		return basics.Rect{}
	}

	bbox := basics.Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}.Intersect(surfaceBounds)

	var bodyPlane, borderPlane []byte
	if body {
		bodyPlane = ov.Body
	}
	if border {
		borderPlane = ov.Border
	}
	colorAlpha := basics.Int8u(64)
	singleColor := runs.singleColor()

	alphaBuf := make([]byte, ov.Pitch*ov.Height)
	CombineAlpha(alphaBuf, bodyPlane, borderPlane, ov.Pitch, xo, yo, w, h, mask, colorAlpha)

	bpp := dst.BPP / 8
	if bpp == 0 {
		bpp = 4
	}

	switch dst.Format {
	case PackedBGRA8888:
		for row := 0; row < h; row++ {
			alphaRow := alphaBuf[(yo+row)*ov.Pitch+xo : (yo+row)*ov.Pitch+xo+w]
			dstOff := (y+row)*dst.Pitch + x*bpp
			dstRow := dst.Bits[dstOff : dstOff+w*bpp]
			blend(dstRow, bpp, alphaRow, runs, xo)
		}
	case PlanarAYUV:
		planeSize := dst.Pitch * dst.Height
		aPlane := dst.Bits[0*planeSize : 1*planeSize]
		yPlane := dst.Bits[1*planeSize : 2*planeSize]
		uPlane := dst.Bits[2*planeSize : 3*planeSize]
		vPlane := dst.Bits[3*planeSize : 4*planeSize]
		for row := 0; row < h; row++ {
			alphaRow := alphaBuf[(yo+row)*ov.Pitch+xo : (yo+row)*ov.Pitch+xo+w]
			base := (y+row)*dst.Pitch + x
			blendRowPlanar(
				aPlane[base:base+w], yPlane[base:base+w], uPlane[base:base+w], vPlane[base:base+w],
				alphaRow, runs, xo, singleColor,
			)
		}
	}

	return bbox
}

func blendRowScalar(row []byte, bpp int, alpha []byte, runs ColorRuns, xOrigin int) {
	single := runs.singleColor()
	color := runs.first()
	cursor := 0
	for i := 0; i < len(alpha); i++ {
		col := color
		a := uint32(alpha[i])
		if !single {
			for cursor < len(runs) && int32(i+xOrigin) >= runs[cursor].End {
				cursor++
			}
			if cursor > 0 {
				col = runs[min(cursor, len(runs)-1)].Color
			} else if cursor < len(runs) {
				col = runs[cursor].Color
			}
			a = (a * (col >> 24)) >> 8
		}
		off := i * bpp
		px := binary.LittleEndian.Uint32(row[off : off+4])
		binary.LittleEndian.PutUint32(row[off:off+4], pixmix(px, col, a))
	}
}

func blendRowPlanar(aP, yP, uP, vP, alpha []byte, runs ColorRuns, xOrigin int, singleColor bool) {
	single := singleColor
	color := runs.first()
	cursor := 0
	for i := 0; i < len(alpha); i++ {
		col := color
		a := uint32(alpha[i])
		if !single {
			for cursor < len(runs) && int32(i+xOrigin) >= runs[cursor].End {
				cursor++
			}
			if cursor > 0 {
				col = runs[min(cursor, len(runs)-1)].Color
			} else if cursor < len(runs) {
				col = runs[cursor].Color
			}
			a = (a * (col >> 24)) >> 8
		}
		temp := uint32(aP[i])<<24 | uint32(yP[i])<<16 | uint32(uP[i])<<8 | uint32(vP[i])
		temp = pixmix(temp, col, a)
		vP[i] = byte(temp)
		uP[i] = byte(temp >> 8)
		yP[i] = byte(temp >> 16)
		aP[i] = byte(temp >> 24)
	}
}

// pixmix blends one packed 32-bit pixel, matching the original's
// bit-packed fixed-point lerp: a is derived from the overlay alpha and
// the color's own alpha byte, then used as a single 0..256 blend
// factor across all four channels at once.
func pixmix(dst, color, alpha uint32) uint32 {
	a := ((alpha * (color >> 24)) >> 6) & 0xff
	ia := 256 - a
	a++
	return (((dst&0x00ff00ff)*ia+(color&0x00ff00ff)*a)&0xff00ff00)>>8 |
		(((dst&0x0000ff00)*ia+(color&0x0000ff00)*a)&0x00ff0000)>>8 |
		(((dst>>8)&0x00ff0000)*ia)&0xff000000
}
