package cpufeature

import "golang.org/x/sys/cpu"

func hasWideBlend() bool {
	return cpu.X86.HasSSE2
}
