// Package overlay implements the overlay builder (§4.6 of the core
// rasterizer): it turns body/border span sets into a pair of 8-bit
// coverage planes sized and padded for whatever border widening and
// blurring was requested, then invokes the blur engines directly -
// mirroring the original Rasterizer::Rasterize, which does exactly
// this in one function.
package overlay

import (
	"errors"
	"fmt"

	"github.com/maxgubler/subraster/internal/blur"
	"github.com/maxgubler/subraster/internal/span"
)

// ErrAllocationFailed is returned when the computed overlay buffer
// size would overflow int, or exceeds an explicit MaxBytes guard. Go's
// allocator does not return NULL the way the original's xy_malloc did,
// but the contract is still modeled for callers written against it.
var ErrAllocationFailed = errors.New("overlay: allocation failed")

// Overlay holds the body and border coverage planes, sharing one
// backing allocation the way the original's mpOverlayBuffer.base does.
// Each plane is Pitch*Height bytes; a byte holds a coverage count in
// 0..64.
type Overlay struct {
	buf    []byte
	Body   []byte
	Border []byte

	Width, Height int // cell-grid dimensions of each plane
	Pitch         int

	OffsetX, OffsetY int // destination-space origin of cell (0,0)
}

// Params configures Build's geometry pass, mirroring the inputs
// Rasterize took beyond the two span sets themselves.
type Params struct {
	// PixelWidth/PixelHeight and PathOffsetX/Y come from
	// edge.Rasterizer.ScanConvert: the body outline's dimensions in
	// span units (eight per cell) and the translation it applied.
	PixelWidth, PixelHeight   int
	PathOffsetX, PathOffsetY int

	// WideBorder is max(rx, ry) as passed to span.Widen; 0 if no
	// border was requested.
	WideBorder int

	// XSub, YSub place the outline's sub-pixel phase within its cell
	// (0..7); only the low 3 bits are significant.
	XSub, YSub int

	BoxBlurPasses int
	GaussianSigma float64

	// MaxBytes bounds the total allocation (2*Pitch*Height); 0 means
	// unbounded. Mirrors subraster.Options.MaxOverlayBytes.
	MaxBytes int
}

// Build implements §4.6: compute overlay geometry (including widening
// and blur padding), allocate the two-plane buffer, accumulate
// sub-pixel coverage from body and border spans, then apply the
// requested Gaussian and box blur passes.
func Build(body, border span.Set, p Params) (*Overlay, error) {
	xsub := p.XSub & 7
	ysub := p.YSub & 7

	width := p.PixelWidth + xsub
	height := p.PixelHeight + ysub
	offsetX := p.PathOffsetX - xsub
	offsetY := p.PathOffsetY - ysub

	wideBorder := (p.WideBorder + 7) &^ 7
	if len(border) > 0 || p.BoxBlurPasses > 0 || p.GaussianSigma > 0 {
		bluradjust := 0
		if p.GaussianSigma > 0 {
			bluradjust += int(p.GaussianSigma*3*8+0.5) | 1
		}
		if p.BoxBlurPasses > 0 {
			bluradjust += 8
		}
		bluradjust = (bluradjust + 7) &^ 7

		width += 2*wideBorder + bluradjust*2
		height += 2*wideBorder + bluradjust*2
		xsub += wideBorder + bluradjust
		ysub += wideBorder + bluradjust
		offsetX -= wideBorder + bluradjust
		offsetY -= wideBorder + bluradjust
	}

	overlayWidth := ((width + 7) >> 3) + 1
	overlayHeight := ((height + 7) >> 3) + 1
	pitch := (overlayWidth + 15) &^ 15

	planeSize := pitch * overlayHeight
	if planeSize <= 0 || pitch < 0 || overlayHeight < 0 {
		return nil, fmt.Errorf("overlay: %w: degenerate geometry (pitch=%d height=%d)", ErrAllocationFailed, pitch, overlayHeight)
	}
	total := 2 * planeSize
	if p.MaxBytes > 0 && total > p.MaxBytes {
		return nil, fmt.Errorf("overlay: %w: %d bytes exceeds MaxOverlayBytes %d", ErrAllocationFailed, total, p.MaxBytes)
	}

	ov := &Overlay{
		buf:     make([]byte, total),
		Width:   overlayWidth,
		Height:  overlayHeight,
		Pitch:   pitch,
		OffsetX: offsetX,
		OffsetY: offsetY,
	}
	ov.Body = ov.buf[:planeSize]
	ov.Border = ov.buf[planeSize:]

	accumulate(ov.Body, body, pitch, xsub, ysub)
	accumulate(ov.Border, border, pitch, xsub, ysub)

	blurPlane := ov.Body
	if len(border) > 0 {
		blurPlane = ov.Border
	}
	// Gaussian itself skips the call if the plane is smaller than the
	// kernel width, matching the original's g_w size guard.
	blur.Gaussian(blurPlane, overlayWidth, overlayHeight, pitch, p.GaussianSigma)
	for pass := 0; pass < p.BoxBlurPasses; pass++ {
		if overlayWidth >= 3 && overlayHeight >= 3 {
			blur.Box(blurPlane[1+pitch:], overlayWidth-2, overlayHeight-2, pitch)
		}
	}

	return ov, nil
}

// accumulate rasterizes one span set into a coverage plane: each span
// [x1,x2) on row y contributes to cells x1>>3 .. (x2-1)>>3 at row
// y>>3, with the first and last cells receiving a partial count and
// interior cells receiving a full 8.
func accumulate(plane []byte, spans span.Set, pitch, xsub, ysub int) {
	for _, sp := range spans {
		y := int(sp.Y()) + ysub
		x1 := int(sp.X1()) + xsub
		x2 := int(sp.X2()) + xsub
		if x2 <= x1 {
			continue
		}
		first := x1 >> 3
		last := (x2 - 1) >> 3
		idx := pitch*(y>>3) + first
		if first == last {
			plane[idx] += byte(x2 - x1)
			continue
		}
		plane[idx] += byte(((first + 1) << 3) - x1)
		idx++
		for first++; first < last; first++ {
			plane[idx] += 8
			idx++
		}
		plane[idx] += byte(x2 - (last << 3))
	}
}
