package block

import "github.com/klauspost/cpuid/v2"

// DetectLanes reports the SIMD lane count compute_block_simd should target
// on the running CPU: 4 when AVX2 is available (four 64-bit lanes across a
// 256-bit register), 2 under SSE2-only, 1 otherwise. Grounded on
// spec.md §9's "SIMD lane count L ∈ {1,2,4}" design note, dispatched via
// github.com/klauspost/cpuid/v2 rather than a build-tag per architecture.
func DetectLanes() int {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX2):
		return 4
	case cpuid.CPU.Supports(cpuid.SSE2):
		return 2
	default:
		return 1
	}
}
