//go:build !amd64

package gmath

func init() {
	// Non-amd64 targets always take the generic path.
	fastInvertEnabled = false
}
