// Package compose implements the alpha combiner and the final blend
// loops that write a rasterized overlay into a destination surface.
package compose

import "github.com/maxgubler/subraster/internal/basics"

// AlphaMask is an external clip mask supplied by the caller, with its
// own pitch independent of the overlay's.
type AlphaMask struct {
	Bits  []byte
	Pitch int
}

// CombineAlpha fills dst (mOverlayPitch-strided, w by h) with the
// combined alpha for one glyph's worth of pixels, starting at (x,y) in
// plane coordinates. body and border may each be nil; exactly one of
// "body present" / "border present" / "both present" is expected by
// the caller, matching the five cases of the original FillAlphaMash.
// colorAlpha is a 0..64 scalar; mask, if non-nil, is consulted at the
// same (x,y) window using its own pitch.
func CombineAlpha(dst []byte, body, border []byte, pitch, x, y, w, h int, mask *AlphaMask, colorAlpha basics.Int8u) {
	bodyAt := planeWindow(body, pitch, x, y)
	borderAt := planeWindow(border, pitch, x, y)
	dstAt := planeWindow(dst, pitch, x, y)

	var maskAt []byte
	var maskPitch int
	if mask != nil {
		maskAt = mask.Bits[y*mask.Pitch+x:]
		maskPitch = mask.Pitch
	}

	switch {
	case mask == nil && body != nil && border != nil:
		for row := 0; row < h; row++ {
			for j := 0; j < w; j++ {
				dstAt[j] = basics.Int8u((uint32(basics.SaturatingSub(borderAt[j], bodyAt[j])) * uint32(colorAlpha)) >> 6)
			}
			bodyAt = bodyAt[pitch:]
			borderAt = borderAt[pitch:]
			dstAt = dstAt[pitch:]
		}
	case mask == nil && body != nil:
		for row := 0; row < h; row++ {
			for j := 0; j < w; j++ {
				dstAt[j] = basics.Int8u((uint32(bodyAt[j]) * uint32(colorAlpha)) >> 6)
			}
			bodyAt = bodyAt[pitch:]
			dstAt = dstAt[pitch:]
		}
	case mask == nil && border != nil:
		for row := 0; row < h; row++ {
			for j := 0; j < w; j++ {
				dstAt[j] = basics.Int8u((uint32(borderAt[j]) * uint32(colorAlpha)) >> 6)
			}
			borderAt = borderAt[pitch:]
			dstAt = dstAt[pitch:]
		}
	case mask != nil && body != nil && border != nil:
		for row := 0; row < h; row++ {
			for j := 0; j < w; j++ {
				d := uint32(basics.SaturatingSub(borderAt[j], bodyAt[j]))
				dstAt[j] = basics.Int8u((d * uint32(maskAt[j]) * uint32(colorAlpha)) >> 12)
			}
			bodyAt = bodyAt[pitch:]
			borderAt = borderAt[pitch:]
			dstAt = dstAt[pitch:]
			maskAt = maskAt[maskPitch:]
		}
	case mask != nil && (body != nil || border != nil):
		src := bodyAt
		if body == nil {
			src = borderAt
		}
		for row := 0; row < h; row++ {
			for j := 0; j < w; j++ {
				dstAt[j] = basics.Int8u((uint32(src[j]) * uint32(maskAt[j]) * uint32(colorAlpha)) >> 12)
			}
			src = src[pitch:]
			dstAt = dstAt[pitch:]
			maskAt = maskAt[maskPitch:]
		}
	}
}

func planeWindow(plane []byte, pitch, x, y int) []byte {
	if plane == nil {
		return nil
	}
	return plane[y*pitch+x:]
}
