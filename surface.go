package subraster

import (
	"github.com/maxgubler/subraster/internal/compose"
	"github.com/maxgubler/subraster/internal/cpufeature"
)

// Surface describes a destination pixel buffer Draw blends into: one
// packed BGRA8888 plane, or four same-sized A/Y/U/V strips.
type Surface = compose.Surface

// Format selects Surface's pixel layout.
type Format = compose.Format

const (
	PackedBGRA8888 = compose.PackedBGRA8888
	PlanarAYUV     = compose.PlanarAYUV
)

// AlphaMask is an optional external clip mask with its own pitch,
// independent of the overlay's.
type AlphaMask = compose.AlphaMask

// ColorRun is one run of a color-run array: Color applies to overlay
// columns below End (and at or past the previous run's End).
type ColorRun = compose.ColorRun

// ColorRuns is a ColorRunEnd-terminated run array; a single solid
// color reduces to ColorRuns{{Color: c, End: ColorRunEnd}}.
type ColorRuns = compose.ColorRuns

// ColorRunEnd terminates a ColorRuns array.
const ColorRunEnd = compose.ColorRunEnd

// Draw blends ov onto dst at (xsub, ysub), clipped to clip, using runs
// for per-column color and mask as an optional external clip alpha.
// It picks the compositor's batched "wide" blend path when the
// current CPU supports it (internal/cpufeature.HasWideBlend) and the
// scalar path otherwise; both produce identical output.
func Draw(dst Surface, ov *Overlay, clip Rect, mask *AlphaMask, xsub, ysub int, runs ColorRuns, body, border bool) Rect {
	if cpufeature.HasWideBlend() {
		return compose.DrawWide(dst, ov, clip, mask, xsub, ysub, runs, body, border)
	}
	return compose.Draw(dst, ov, clip, mask, xsub, ysub, runs, body, border)
}
