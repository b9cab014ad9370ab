//go:build !amd64

package cpuinfo

// HasFastPath always reports false outside amd64: coregx's simd package
// likewise falls back to a portable scalar implementation on every
// other architecture.
func HasFastPath() bool {
	return false
}
