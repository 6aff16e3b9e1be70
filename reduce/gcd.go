package reduce

// ExtendedGCD computes Stein's binary extended GCD of x and y,
// returning (a, b, gcd) such that a*x + b*y == gcd. Grounded on
// original_source/algebra/src/utils/gcd.rs.
func ExtendedGCD[T Word](x, y T) (a, b int64, gcd T) {
	if x == 0 {
		return 0, 1, y
	}
	if y == 0 {
		return 1, 0, x
	}

	ux, uy := uint64(x), uint64(y)
	shift := uint(0)
	for ux&1 == 0 && uy&1 == 0 {
		ux >>= 1
		uy >>= 1
		shift++
	}

	x0, y0 := ux, uy
	var A, B, C, D int64 = 1, 0, 0, 1

	for ux&1 == 0 {
		ux >>= 1
		if A&1 != 0 || B&1 != 0 {
			A += int64(y0)
			B -= int64(x0)
		}
		A, B = A/2, B/2
	}

	for uy != 0 {
		for uy&1 == 0 {
			uy >>= 1
			if C&1 != 0 || D&1 != 0 {
				C += int64(y0)
				D -= int64(x0)
			}
			C, D = C/2, D/2
		}
		if ux >= uy {
			ux -= uy
			A -= C
			B -= D
		} else {
			uy -= ux
			C -= A
			D -= B
		}
	}

	return A, B, T(ux << shift)
}

// InvReduce returns the canonical modular inverse of x under p, or
// ErrNoInverse if gcd(x, p) != 1.
func InvReduce[T Word](x T, p BarrettModulus[T]) (T, error) {
	a, _, gcd := ExtendedGCD(x, p.Value())
	if gcd != 1 {
		return 0, ErrNoInverse
	}
	pv := int64(p.Value())
	r := a % pv
	if r < 0 {
		r += pv
	}
	return T(r), nil
}
