// Package cpufeature is the thin seam spec.md leaves for a caller to
// pick between the compositor's scalar and "wide" blend paths. The
// core itself never branches on CPU features; this package gives the
// facade a real feature-detection dependency to make that choice with,
// instead of a hand-rolled one.
package cpufeature

// HasWideBlend reports whether the current CPU supports the
// instruction set the compositor's "wide" batched blend path assumes.
// On amd64 this checks SSE2 (present on every amd64 CPU Go targets,
// so in practice always true there); other architectures report false
// and fall back to the scalar path.
func HasWideBlend() bool {
	return hasWideBlend()
}
