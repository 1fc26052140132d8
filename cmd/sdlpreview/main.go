//go:build sdl2
// +build sdl2

// Command sdlpreview opens a window and rasterizes a single glyph-like
// outline directly against an SDL2 surface, exercising the full
// path -> edge -> span -> overlay -> blur -> compose pipeline against a
// real pixel buffer. It is a manual smoke test, not part of the core
// rasterizer's import graph.
package main

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/maxgubler/subraster"
)

const (
	winWidth  = 480
	winHeight = 320
)

// buildOutline draws a rounded "S"-like glyph using lines and cubic
// curves, large enough that border widening and blur are both visibly
// at work.
func buildOutline() *subraster.Path {
	p := subraster.NewPath()
	const u = 8 * 20 // 20px in 1/8-px native units

	p.MoveTo(u, 0)
	p.LineTo(3*u, 0)
	p.CurveTo(4*u, 0, 5*u, u, 5*u, 2*u)
	p.CurveTo(5*u, 3*u, 4*u, 3*u, 3*u, 3*u)
	p.LineTo(2*u, 3*u)
	p.CurveTo(0, 3*u, 0, 5*u, 2*u, 5*u)
	p.LineTo(4*u, 5*u)
	p.LineTo(4*u, 4*u)
	p.LineTo(2*u, 4*u)
	p.CurveTo(u, 4*u, u, 3*u+u/2, 2*u, 3*u+u/2)
	p.LineTo(3*u, 3*u+u/2)
	p.CurveTo(6*u, 3*u+u/2, 6*u, u, 3*u, u)
	p.LineTo(u, u)
	p.Close()
	return p
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl.Init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("subraster preview",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl.CreateWindow: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("sdl.CreateRenderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_BGRA32), sdl.TEXTUREACCESS_STREAMING,
		winWidth, winHeight)
	if err != nil {
		return fmt.Errorf("CreateTexture: %w", err)
	}
	defer texture.Destroy()

	cpuSurface, err := sdl.CreateRGBSurfaceWithFormat(
		0, winWidth, winHeight, 32, uint32(sdl.PIXELFORMAT_BGRA32))
	if err != nil {
		return fmt.Errorf("CreateRGBSurfaceWithFormat: %w", err)
	}
	defer cpuSurface.Free()

	pixels := cpuSurface.Pixels()
	for i := range pixels {
		pixels[i] = 0
	}

	r := subraster.NewRasterizer()
	ov, err := r.Rasterize(buildOutline(), 3*8, 3*8, subraster.Options{
		WideLineArtifactFix: true,
		BoxBlurPasses:       0,
		GaussianSigma:       2.5,
	})
	if err != nil {
		return fmt.Errorf("Rasterize: %w", err)
	}

	dst := subraster.Surface{
		Bits:   pixels,
		Pitch:  int(cpuSurface.Pitch),
		Width:  winWidth,
		Height: winHeight,
		BPP:    32,
		Format: subraster.PackedBGRA8888,
	}
	clip := subraster.Rect{X2: winWidth, Y2: winHeight}
	runs := subraster.ColorRuns{{Color: 0xFFE0C040, End: subraster.ColorRunEnd}}

	// Place the outline near the window center; Draw takes xsub/ysub
	// in 1/8-px destination units.
	subraster.Draw(dst, ov, clip, nil, winWidth/2*8, winHeight/2*8, runs, true, true)

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		if err := texture.Update(nil, unsafe.Pointer(&pixels[0]), int(cpuSurface.Pitch)); err != nil {
			return fmt.Errorf("texture.Update: %w", err)
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
		sdl.Delay(16)
	}

	return nil
}
