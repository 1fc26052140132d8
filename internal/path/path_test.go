package path

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestAppendTranslates(t *testing.T) {
	src := New()
	src.MoveTo(0, 0)
	src.LineTo(64, 0)

	dst := New()
	dst.MoveTo(100, 100)
	dst.Append(src, 8, 16)

	if len(dst.Verts) != 3 {
		t.Fatalf("got %d verts, want 3", len(dst.Verts))
	}
	if got := dst.Verts[1]; got.X != 8 || got.Y != 16 {
		t.Errorf("translated MoveTo = (%d,%d), want (8,16)", got.X, got.Y)
	}
	if got := dst.Verts[2]; got.X != 72 || got.Y != 16 {
		t.Errorf("translated LineTo = (%d,%d), want (72,16)", got.X, got.Y)
	}
}

func TestCloseSetsFlagOnLastVertex(t *testing.T) {
	p := New()
	p.MoveTo(0, 0)
	p.LineTo(8, 8)
	p.Close()

	last := p.Verts[len(p.Verts)-1]
	if last.Type&CloseFigure == 0 {
		t.Error("expected CloseFigure flag on last vertex")
	}
	if last.Type&^CloseFigure != LineTo {
		t.Errorf("expected underlying command LineTo, got %v", last.Type&^CloseFigure)
	}
}

func TestClearResetsLength(t *testing.T) {
	p := New()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)
	p.Clear()
	if len(p.Verts) != 0 {
		t.Errorf("expected 0 verts after Clear, got %d", len(p.Verts))
	}
}

func TestMoveToFixedRoundsToEighthPixel(t *testing.T) {
	p := New()
	// 1.5px in 26.6 fixed point = 96 units; should map to 12 in 1/8 px units.
	p.MoveToFixed(fixed.Point26_6{X: fixed.I(1) + fixed.Int26_6(32), Y: 0})
	if p.Verts[0].X != 12 {
		t.Errorf("got X=%d, want 12", p.Verts[0].X)
	}
}
