//go:build amd64

// Package cpuinfo detects CPU features that tune the read-buffer size
// of cmd/mygrep's input scanner. Grounded on coregx simd/memchr_amd64.go's
// CPU-feature-gated dispatch: that package picks an AVX2 assembly
// kernel when available; this module has no assembly kernels to pick
// between, so the same feature probe instead just selects a larger
// read buffer (256 KiB instead of 64 KiB) in cmd/mygrep.
package cpuinfo

import "golang.org/x/sys/cpu"

// HasFastPath reports whether the CPU offers AVX2, the same feature
// coregx's simd package gates its accelerated memchr kernels on.
func HasFastPath() bool {
	return cpu.X86.HasAVX2
}
