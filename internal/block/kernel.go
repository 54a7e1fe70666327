package block

import "math/bits"

func popcount(x uint64) int { return bits.OnesCount64(x) }

// ComputeBlockKernel runs the exact 20-bit-logical-op recipe of spec.md
// §4.7 for one W-row slice: given the scalar horizontal carry entering
// this slice (hp, hm, each 0 or 1), the slice's current vertical delta
// (vp, vm), and the eq bitmask (which of the W rows match the column's
// character), it returns the scalar horizontal carry leaving this slice
// and the slice's new vertical delta.
//
// Go has no bitwise NOT operator; "!" in the spec's pseudocode is the
// unary complement, written here as ^x.
func ComputeBlockKernel(hp, hm, vp, vm, eq uint64) (outHp, outHm, newVp, newVm uint64) {
	vx := eq | vm
	eqP := eq | hm
	hx := (((eqP & vp) + vp) ^ vp) | eqP
	hpP := vm | ^(hx | vp)
	hmP := vp & hx

	hpw := hpP >> (W - 1)
	hmw := hmP >> (W - 1)
	hpP = (hpP << 1) | hp
	hmP = (hmP << 1) | hm

	newVp = hmP | ^(vx | hpP)
	newVm = hpP & vx
	return hpw, hmw, newVp, newVm
}

// ComputeBlockSIMD runs ComputeBlockKernel across L adjacent W-row slices,
// one eq word per slice, threading the horizontal carry out of each slice
// into the next exactly as consecutive ComputeBlockKernel calls do. It is the scalar-portable expression of spec.md §4.7's
// compute_block_simd<L>: real SIMD execution would lift the same 20 ops to
// L-wide vector registers, but the bit-for-bit result is identical, which
// is exactly the property spec.md §8 requires of this function relative to
// ComputeBlockKernel.
func ComputeBlockSIMD(hp, hm uint64, vp, vm, eq []uint64) (outHp, outHm uint64, newVp, newVm []uint64) {
	L := len(vp)
	newVp = make([]uint64, L)
	newVm = make([]uint64, L)
	for lane := 0; lane < L; lane++ {
		var nvp, nvm uint64
		hp, hm, nvp, nvm = ComputeBlockKernel(hp, hm, vp[lane], vm[lane], eq[lane])
		newVp[lane] = nvp
		newVm[lane] = nvm
	}
	return hp, hm, newVp, newVm
}
