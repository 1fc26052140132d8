package edge

import (
	"testing"

	"github.com/maxgubler/subraster/internal/path"
)

func TestScanConvertEmptyPath(t *testing.T) {
	r := NewRasterizer()
	_, _, _, _, _, err := r.ScanConvert(path.New())
	if err != path.ErrEmptyPath {
		t.Fatalf("got err=%v, want ErrEmptyPath", err)
	}
}

func TestScanConvertUnitSquare(t *testing.T) {
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(64, 0)
	p.LineTo(64, 64)
	p.LineTo(0, 64)
	p.Close()

	r := NewRasterizer()
	spans, w, h, offX, offY, err := r.ScanConvert(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 9 || h != 9 {
		t.Errorf("got w=%d h=%d, want 9,9", w, h)
	}
	if offX != 0 || offY != 0 {
		t.Errorf("got offset (%d,%d), want (0,0)", offX, offY)
	}
	if len(spans) != 8 {
		t.Fatalf("got %d spans, want 8 (one per pixel row)", len(spans))
	}
	for y := int64(0); y < 8; y++ {
		sp := spans[y]
		if sp.Y() != y {
			t.Errorf("span %d: Y()=%d, want %d", y, sp.Y(), y)
		}
		if sp.X1() != 0 || sp.X2() != 64 {
			t.Errorf("span %d: [%d,%d), want [0,64)", y, sp.X1(), sp.X2())
		}
	}
}

func TestScanConvertTranslatesByOffset(t *testing.T) {
	p := path.New()
	// A square lying away from the origin: bbox should translate it
	// back so spans start at a local x,y of 0.
	p.MoveTo(256, 256)
	p.LineTo(320, 256)
	p.LineTo(320, 320)
	p.LineTo(256, 320)
	p.Close()

	r := NewRasterizer()
	spans, _, _, offX, offY, err := r.ScanConvert(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offX == 0 && offY == 0 {
		t.Fatalf("expected a non-zero bounding box offset")
	}
	for _, sp := range spans {
		if sp.X1() != 0 || sp.X2() != 8 {
			t.Errorf("span [%d,%d), want [0,8) after translation", sp.X1(), sp.X2())
		}
	}
}

func TestScanConvertOpenSubpathAutoCloses(t *testing.T) {
	// No explicit Close() call: the implicit closing edge must still
	// be synthesized (CLOSE_FIGURE is advisory, per §6).
	p := path.New()
	p.MoveTo(0, 0)
	p.LineTo(64, 0)
	p.LineTo(64, 64)
	p.LineTo(0, 64)

	r := NewRasterizer()
	spans, _, _, _, _, err := r.ScanConvert(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spans) != 8 {
		t.Fatalf("got %d spans, want 8", len(spans))
	}
}

func TestScanConvertBezierBulge(t *testing.T) {
	// A closed curve bulging right of a straight return edge should
	// produce spans wider than the straight-sided degenerate case.
	p := path.New()
	p.MoveTo(0, 0)
	p.CurveTo(80, 0, 80, 64, 0, 64)
	p.Close()

	r := NewRasterizer()
	spans, _, _, _, _, err := r.ScanConvert(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spans) == 0 {
		t.Fatal("expected at least one span from the bulge")
	}
	for _, sp := range spans {
		if sp.X2() <= sp.X1() {
			t.Errorf("degenerate span [%d,%d)", sp.X1(), sp.X2())
		}
	}
}
