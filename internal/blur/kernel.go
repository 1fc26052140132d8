// Package blur implements the two blur engines the core uses to soften
// overlay coverage planes before compositing: a tabulated,
// volume-normalized separable Gaussian (ported from libass's
// ass_synth_priv/ass_gauss_blur, as carried into the original
// Rasterizer.cpp), and a box-style [1 2 1]^2 convolution (be_blur).
// Kernels and scratch buffers are cached globally, keyed by sigma and
// by required size respectively, since the same handful of blur radii
// recur across every glyph a subtitle renderer draws.
package blur

import (
	"math"
	"sync"
)

// Kernel is a cached, normalized Gaussian kernel for one sigma. G is
// the integer kernel (length W, Sum(G) <= 0x10000); GT2 is the
// precomputed value-times-weight table, GT2[m+256*i] = i*G[m], used to
// turn the per-pixel multiply in the inner loop into a table lookup.
type Kernel struct {
	Sigma float64
	W, R  int // width (always odd), radius = W/2
	G     []uint32
	GT2   []uint32
}

var kernelCache sync.Map // float64 sigma -> *Kernel

// GetKernel returns the cached kernel for sigma, building and caching
// it on first use. Equal sigma always returns the same immutable
// *Kernel, matching the original's boost::flyweight deduplication.
func GetKernel(sigma float64) *Kernel {
	if k, ok := kernelCache.Load(sigma); ok {
		return k.(*Kernel)
	}
	k := generateKernel(sigma)
	actual, _ := kernelCache.LoadOrStore(sigma, k)
	return actual.(*Kernel)
}

// generateKernel implements ass_synth_priv::generate_tables: build an
// unnormalized Gaussian sample, then find by bisection the largest
// volume_factor such that the rounded integer kernel's sum stays at or
// under 0x10000 (a fixed-point representation of 1.0).
func generateKernel(sigma float64) *Kernel {
	w := int(math.Ceil(sigma*3)) | 1
	r := w / 2
	k := &Kernel{Sigma: sigma, W: w, R: r, G: make([]uint32, w), GT2: make([]uint32, 256*w)}

	a := -1 / (sigma * sigma * 2)
	samples := make([]float64, w)
	for i := range samples {
		d := float64(i - r)
		samples[i] = math.Exp(a * d * d)
	}

	volumeFactor := 0.0
	for volumeDiff := 1e7; volumeDiff > 1e-7; volumeDiff *= 0.5 {
		volumeFactor += volumeDiff
		var volume uint32
		for i, s := range samples {
			k.G[i] = uint32(s*volumeFactor + 0.5)
			volume += k.G[i]
		}
		if volume > 0x10000 {
			volumeFactor -= volumeDiff
		}
	}
	for i, s := range samples {
		k.G[i] = uint32(s*volumeFactor + 0.5)
	}

	for mx := 0; mx < w; mx++ {
		for i := 0; i < 256; i++ {
			k.GT2[mx+i*w] = uint32(i) * k.G[mx]
		}
	}
	return k
}

var tempBufCache sync.Map // int size -> *[]uint32

// GetTempBuf returns a cached scratch buffer of at least size elements,
// keyed by the exact size requested (matching the original's
// ass_tmp_buf_get_size dedup key). The buffer is shared across calls
// with the same size and must not be retained past the blur call that
// borrowed it.
func GetTempBuf(size int) []uint32 {
	if b, ok := tempBufCache.Load(size); ok {
		return b.([]uint32)
	}
	buf := make([]uint32, size)
	actual, _ := tempBufCache.LoadOrStore(size, buf)
	return actual.([]uint32)
}
