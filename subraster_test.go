package subraster

import (
	"errors"
	"testing"

	"github.com/maxgubler/subraster/internal/path"
)

func TestRasterizeUnitSquareProducesOverlay(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(64, 0)
	p.LineTo(64, 64)
	p.LineTo(0, 64)
	p.Close()

	r := NewRasterizer()
	ov, err := r.Rasterize(p, 0, 0, DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if ov.Width <= 0 || ov.Height <= 0 {
		t.Fatalf("got empty overlay %+v", ov)
	}
}

func TestRasterizeEmptyPathReturnsErrEmptyPath(t *testing.T) {
	p := NewPath()
	r := NewRasterizer()
	if _, err := r.Rasterize(p, 0, 0, DefaultOptions()); !errors.Is(err, path.ErrEmptyPath) {
		t.Fatalf("got err=%v, want ErrEmptyPath for an empty path", err)
	}
}

func TestRasterizeWithBorderWidensOverlay(t *testing.T) {
	square := func() *Path {
		p := NewPath()
		p.MoveTo(0, 0)
		p.LineTo(64, 0)
		p.LineTo(64, 64)
		p.LineTo(0, 64)
		p.Close()
		return p
	}

	r := NewRasterizer()
	plain, err := r.Rasterize(square(), 0, 0, DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterize (plain): %v", err)
	}

	r2 := NewRasterizer()
	widened, err := r2.Rasterize(square(), 16, 16, DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterize (widened): %v", err)
	}

	if widened.Width <= plain.Width || widened.Height <= plain.Height {
		t.Errorf("widened overlay (%d,%d) should exceed plain (%d,%d)",
			widened.Width, widened.Height, plain.Width, plain.Height)
	}
	if len(widened.Border) == 0 {
		t.Errorf("expected a non-empty border plane when a border radius is requested")
	}
}

func TestDrawEndToEnd(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(64, 0)
	p.LineTo(64, 64)
	p.LineTo(0, 64)
	p.Close()

	r := NewRasterizer()
	ov, err := r.Rasterize(p, 0, 0, DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}

	surf := Surface{
		Bits:   make([]byte, 64*16*4),
		Pitch:  64 * 4,
		Width:  64,
		Height: 16,
		BPP:    32,
		Format: PackedBGRA8888,
	}
	clip := Rect{X2: 64, Y2: 16}
	runs := ColorRuns{{Color: 0xFFFFFFFF, End: ColorRunEnd}}

	bbox := Draw(surf, ov, clip, nil, 0, 0, runs, true, false)
	if bbox.Empty() {
		t.Fatalf("expected Draw to touch some pixels")
	}
}
