package ntt

import "github.com/pado-labs/threshold-zk-lhe/reduce"

// Transform computes the forward negacyclic NTT of values in place:
// coefficient representation in, bit-reversed evaluation representation
// out. Gap halves from N/2 down to 1 (Cooley-Tukey, decimation in
// frequency), mirroring the butterfly structure of
// original_source/algebra/src/transformation/ntt_table.rs and the
// lazy-reduction discipline of ring/ntt.go's NTT.
func (t *Table[M]) Transform(values []uint64) {
	n := t.n
	p := t.p
	twiceP := t.twiceP

	gap := n >> 1
	j2 := gap - 1
	psi := t.rootPowers[1]
	for j := 0; j <= j2; j++ {
		values[j], values[j+gap] = butterfly(values[j], values[j+gap], psi, p, twiceP)
	}

	for m := 2; m < n; m <<= 1 {
		gap >>= 1
		for i := 0; i < m; i++ {
			j1 := (i * gap) << 1
			j2 := j1 + gap - 1
			psi := t.rootPowers[m+i]
			for j := j1; j <= j2; j++ {
				values[j], values[j+gap] = butterfly(values[j], values[j+gap], psi, p, twiceP)
			}
		}
	}

	for i := 0; i < n; i++ {
		values[i] = canonicalize(values[i], p, twiceP)
	}
}

// InverseTransform computes the inverse negacyclic NTT in place:
// bit-reversed evaluation representation in, coefficient representation
// out. Gap doubles from 1 up to N/2 (Gentleman-Sande), mirroring
// ring/ntt.go's InvNTT. Scaling by invDegree (N^-1) is not fused into
// the final butterfly layer: it runs as a separate pass over every
// value after all layers, which also brings each value into [0, p).
func (t *Table[M]) InverseTransform(values []uint64) {
	n := t.n
	p := t.p
	twiceP := t.twiceP

	gap := 1
	half := n >> 1
	j1 := 0
	for i := 0; i < half; i++ {
		psi := t.invRootPowers[half+i]
		values[j1], values[j1+gap] = invButterfly(values[j1], values[j1+gap], psi, p, twiceP)
		j1 += gap << 1
	}

	gap <<= 1
	for m := n >> 1; m > 1; m >>= 1 {
		j1 = 0
		half = m >> 1
		for i := 0; i < half; i++ {
			j2 := j1 + gap - 1
			psi := t.invRootPowers[half+i]
			for j := j1; j <= j2; j++ {
				values[j], values[j+gap] = invButterfly(values[j], values[j+gap], psi, p, twiceP)
			}
			j1 += gap << 1
		}
		gap <<= 1
	}

	for j := 0; j < n; j++ {
		values[j] = t.invDegree.MulReduce(values[j], p)
	}
}

func butterfly(u, v uint64, psi reduce.ShoupFactor[uint64], p, twiceP uint64) (x, y uint64) {
	if u >= twiceP {
		u -= twiceP
	}
	vv := psi.MulReduceLazy(v, p)
	x = u + vv
	y = u + twiceP - vv
	return
}

func invButterfly(u, v uint64, psi reduce.ShoupFactor[uint64], p, twiceP uint64) (x, y uint64) {
	x = u + v
	if x >= twiceP {
		x -= twiceP
	}
	y = psi.MulReduceLazy(u+twiceP-v, p)
	return
}

func canonicalize(v, p, twiceP uint64) uint64 {
	if v >= twiceP {
		v -= twiceP
	}
	if v >= p {
		v -= p
	}
	return v
}
