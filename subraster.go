// Package subraster is a subtitle rasterizer: it turns a vector glyph
// outline into anti-aliased body/border coverage planes, optionally
// blurred, and composites them onto a destination pixel surface.
//
// The pipeline mirrors the original renderer's stages one-for-one:
//
//	path.Path        -- vertex store an external layout engine fills in
//	edge.Rasterizer   -- scan-converts the path into a body span set
//	span.Widen        -- dilates the body into a border span set
//	overlay.Build     -- accumulates spans into coverage planes, blurs them
//	compose.Draw      -- blends the overlay onto a destination surface
//
// This file re-exports just enough of each internal package to drive
// that pipeline without importing internal/... directly:
//
//   - path.go     -- the public Path alias and constructor
//   - raster.go   -- Rasterizer, the edge-build + widen + overlay step
//   - surface.go  -- Surface/ColorRun/AlphaMask aliases and Draw
//
// Everything else (curve flattening, the span key layout, the blur
// kernel cache, CPU feature detection) stays internal; callers only
// ever see Path, Rasterizer, Overlay, Surface, and Draw.
package subraster

import "github.com/maxgubler/subraster/internal/basics"

// Options configures Rasterizer.Rasterize beyond the path and border
// radii themselves.
type Options struct {
	// WideLineArtifactFix documents, rather than toggles, the
	// double-overlap fix span.Widen always applies for a purely
	// horizontal or vertical border (rx==0 or ry==0): without it a
	// one-pixel border on an axis-aligned edge misses a row. There is
	// no case where disabling it produces correct output, so it is
	// always true; it exists on Options so a caller reading this
	// struct sees that the fix is deliberate, not forgotten.
	WideLineArtifactFix bool

	// XSub, YSub place the path's sub-pixel phase within its cell grid
	// (0..7 each); only the low 3 bits are significant.
	XSub, YSub int

	// BoxBlurPasses and GaussianSigma configure the overlay's blur
	// stage; zero/non-positive values skip the corresponding pass.
	BoxBlurPasses int
	GaussianSigma float64

	// MaxOverlayBytes bounds the overlay's total allocation (body plane
	// plus border plane); 0 means unbounded.
	MaxOverlayBytes int
}

// DefaultOptions returns the zero-blur, zero-border, unbounded
// configuration most callers start from.
func DefaultOptions() Options {
	return Options{WideLineArtifactFix: true}
}

// Rect is a half-open destination-space rectangle, used for clip
// regions and Draw's returned bounding box.
type Rect = basics.Rect
