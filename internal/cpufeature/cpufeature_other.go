//go:build !amd64

package cpufeature

func hasWideBlend() bool {
	return false
}
