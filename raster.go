package subraster

import (
	"github.com/maxgubler/subraster/internal/edge"
	"github.com/maxgubler/subraster/internal/overlay"
	"github.com/maxgubler/subraster/internal/span"
)

// Overlay holds the body and border coverage planes produced by
// Rasterizer.Rasterize, ready for Draw.
type Overlay = overlay.Overlay

// Rasterizer owns the edge arena used to scan-convert paths. It is not
// safe for concurrent use - callers needing concurrency should use one
// Rasterizer per goroutine. The edge arena it wraps is reallocated on
// every call.
type Rasterizer struct {
	edge *edge.Rasterizer
}

// NewRasterizer returns a Rasterizer ready for Rasterize calls.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{edge: edge.NewRasterizer()}
}

// Rasterize scan-converts p into a body span set, widens it by
// (borderRX, borderRY) to get a border span set if either radius is
// positive, then builds and blurs the overlay per opts. A path.ErrEmptyPath
// error means the path had nothing to draw - callers should treat that
// as success with no overlay to composite, not a failure.
func (r *Rasterizer) Rasterize(p *Path, borderRX, borderRY int32, opts Options) (*Overlay, error) {
	body, w, h, offsetX, offsetY, err := r.edge.ScanConvert(p)
	if err != nil {
		return nil, err
	}

	var border span.Set
	if borderRX > 0 || borderRY > 0 {
		border = span.Widen(body, borderRX, borderRY)
	}

	wideBorder := borderRX
	if borderRY > wideBorder {
		wideBorder = borderRY
	}

	return overlay.Build(body, border, overlay.Params{
		PixelWidth:    w,
		PixelHeight:   h,
		PathOffsetX:   offsetX,
		PathOffsetY:   offsetY,
		WideBorder:    int(wideBorder),
		XSub:          opts.XSub,
		YSub:          opts.YSub,
		BoxBlurPasses: opts.BoxBlurPasses,
		GaussianSigma: opts.GaussianSigma,
		MaxBytes:      opts.MaxOverlayBytes,
	})
}
