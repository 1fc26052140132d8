package compose

import (
	"testing"

	"github.com/maxgubler/subraster/internal/basics"
	"github.com/maxgubler/subraster/internal/overlay"
	"github.com/maxgubler/subraster/internal/span"
)

func TestCombineAlphaBodyOnlyNoMask(t *testing.T) {
	pitch := 4
	body := []byte{40, 0, 0, 0, 0, 0, 0, 0}
	dst := make([]byte, 8)
	CombineAlpha(dst, body, nil, pitch, 0, 0, 1, 1, nil, 64)
	// (40*64)>>6 = 40
	if dst[0] != 40 {
		t.Errorf("got %d, want 40", dst[0])
	}
}

func TestCombineAlphaBothSaturatingSub(t *testing.T) {
	pitch := 4
	body := []byte{50, 0, 0, 0}
	border := []byte{30, 0, 0, 0}
	dst := make([]byte, 4)
	CombineAlpha(dst, body, border, pitch, 0, 0, 1, 1, nil, 64)
	// border < body: saturating_sub clamps to 0.
	if dst[0] != 0 {
		t.Errorf("got %d, want 0 (saturated)", dst[0])
	}

	border2 := []byte{80, 0, 0, 0}
	dst2 := make([]byte, 4)
	CombineAlpha(dst2, body, border2, pitch, 0, 0, 1, 1, nil, 64)
	// (80-50)*64>>6 = 30
	if dst2[0] != 30 {
		t.Errorf("got %d, want 30", dst2[0])
	}
}

func TestCombineAlphaWithMask(t *testing.T) {
	pitch := 2
	body := []byte{64, 0}
	mask := &AlphaMask{Bits: []byte{128, 0}, Pitch: 2}
	dst := make([]byte, 2)
	CombineAlpha(dst, body, nil, pitch, 0, 0, 1, 1, mask, 64)
	// (64*128*64)>>12 = 128
	if dst[0] != 128 {
		t.Errorf("got %d, want 128", dst[0])
	}
}

func singleRowSpan(y int64, x1, x2 int32) span.Set {
	return span.Set{span.NewSpan(y, x1, x2)}
}

func TestDrawSingleColorFillsPixels(t *testing.T) {
	body := singleRowSpan(0, 0, 64)
	ov, err := overlay.Build(body, nil, overlay.Params{PixelWidth: 8, PixelHeight: 8})
	if err != nil {
		t.Fatalf("overlay.Build: %v", err)
	}
	for i := range ov.Body {
		ov.Body[i] = 64
	}

	surf := Surface{
		Bits:   make([]byte, 64*16*4),
		Pitch:  64 * 4,
		Width:  64,
		Height: 16,
		BPP:    32,
		Format: PackedBGRA8888,
	}
	clip := basics.Rect{X2: 64, Y2: 16}
	runs := ColorRuns{{Color: 0xFFFFFFFF, End: ColorRunEnd}}

	bbox := Draw(surf, ov, clip, nil, 0, 0, runs, true, false)
	if bbox.Empty() {
		t.Fatalf("expected non-empty bbox")
	}

	// The first touched pixel's color channels should have picked up
	// some of the fill color; pixmix only scales the destination's own
	// alpha byte by 256-a (it decays toward zero and never takes the
	// fill color's alpha), matching the original's packed-BGRA blend.
	off := bbox.Y1*surf.Pitch + bbox.X1*4
	if surf.Bits[off] == 0 {
		t.Errorf("expected blue channel to be blended, got 0")
	}
}

func TestDrawNothingWhenNoPlanesSelected(t *testing.T) {
	body := singleRowSpan(0, 0, 64)
	ov, err := overlay.Build(body, nil, overlay.Params{PixelWidth: 8, PixelHeight: 8})
	if err != nil {
		t.Fatalf("overlay.Build: %v", err)
	}
	surf := Surface{Bits: make([]byte, 64*16*4), Pitch: 64 * 4, Width: 64, Height: 16, BPP: 32}
	clip := basics.Rect{X2: 64, Y2: 16}
	runs := ColorRuns{{Color: 0xFFFFFFFF, End: ColorRunEnd}}
	bbox := Draw(surf, ov, clip, nil, 0, 0, runs, false, false)
	if !bbox.Empty() {
		t.Errorf("expected empty bbox when body and border both false")
	}
}

func TestDrawClipsToDestination(t *testing.T) {
	body := singleRowSpan(0, 0, 64)
	ov, err := overlay.Build(body, nil, overlay.Params{PixelWidth: 8, PixelHeight: 8})
	if err != nil {
		t.Fatalf("overlay.Build: %v", err)
	}
	surf := Surface{Bits: make([]byte, 4*4*4), Pitch: 4 * 4, Width: 4, Height: 4, BPP: 32, Format: PackedBGRA8888}
	// Clip smaller than the overlay's own footprint.
	clip := basics.Rect{X2: 2, Y2: 2}
	runs := ColorRuns{{Color: 0xFFFFFFFF, End: ColorRunEnd}}
	bbox := Draw(surf, ov, clip, nil, 0, 0, runs, true, false)
	if bbox.X2 > 2 || bbox.Y2 > 2 {
		t.Errorf("bbox %+v exceeds clip rect", bbox)
	}
}

func TestDrawWideMatchesScalar(t *testing.T) {
	body := singleRowSpan(0, 0, 64*6)
	ov, err := overlay.Build(body, nil, overlay.Params{PixelWidth: 64 * 6, PixelHeight: 8})
	if err != nil {
		t.Fatalf("overlay.Build: %v", err)
	}
	for i := range ov.Body {
		ov.Body[i] = 64
	}

	mk := func() Surface {
		return Surface{Bits: make([]byte, 64*16*4), Pitch: 64 * 4, Width: 64, Height: 16, BPP: 32, Format: PackedBGRA8888}
	}
	clip := basics.Rect{X2: 64, Y2: 16}
	runs := ColorRuns{{Color: 0xFF112233, End: 4}, {Color: 0xFFAABBCC, End: ColorRunEnd}}

	a := mk()
	b := mk()
	bboxA := Draw(a, ov, clip, nil, 0, 0, runs, true, false)
	bboxB := DrawWide(b, ov, clip, nil, 0, 0, runs, true, false)

	if bboxA != bboxB {
		t.Fatalf("bbox mismatch: %+v vs %+v", bboxA, bboxB)
	}
	for i := range a.Bits {
		if a.Bits[i] != b.Bits[i] {
			t.Fatalf("byte %d differs: scalar=%d wide=%d", i, a.Bits[i], b.Bits[i])
		}
	}
}
