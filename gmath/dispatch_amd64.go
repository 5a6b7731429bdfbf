//go:build amd64

package gmath

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		fastInvertEnabled = false
		return
	}
	// SSE4.1 is the floor the float32 kernel was tuned against. Older
	// x86-64 parts fall back to the generic path.
	fastInvertEnabled = cpu.X86.HasSSE41
}
