package reduce

// primeBitMask encodes membership of {2,3,5,7,11,...,61} as bit i set
// for prime i, for the fast small-value path. Grounded on
// original_source/algebra/src/utils/prime.rs.
const primeBitMask uint64 = 1<<2 | 1<<3 | 1<<5 | 1<<7 | 1<<11 | 1<<13 | 1<<17 | 1<<19 |
	1<<23 | 1<<29 | 1<<31 | 1<<37 | 1<<41 | 1<<43 | 1<<47 | 1<<53 | 1<<59 | 1<<61

var smallSievePrimes = [...]uint64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61}

// PowReduce computes base^exp mod the Barrett modulus via square-and-
// multiply, stripping trailing zero exponent bits with repeated
// squarings to skip no-op multiplications.
func PowReduce[T Word](base T, exp uint64, m BarrettModulus[T]) T {
	if exp == 0 {
		return 1 % m.Value()
	}
	for exp&1 == 0 {
		lo, hi := WidenMul(base, base)
		base = m.ReduceWide(lo, hi)
		exp >>= 1
	}
	result := base
	exp >>= 1
	for exp != 0 {
		lo, hi := WidenMul(base, base)
		base = m.ReduceWide(lo, hi)
		if exp&1 == 1 {
			rlo, rhi := WidenMul(result, base)
			result = m.ReduceWide(rlo, rhi)
		}
		exp >>= 1
	}
	return result
}

// ProbablyPrime runs Miller-Rabin primality testing over a Barrett
// modulus with `rounds` witnesses: the first witness is fixed at 2,
// subsequent witnesses are sampled uniformly from [3, value-2] by
// calling nextWitness(lo, hi), which must return a value uniform over
// [lo, hi] inclusive. value-1 is excluded from the witness pool on
// purpose: a = value-1 = -1 always passes as a degenerate witness
// (x = a^q = ±1 trivially), so including it would waste a round without
// tightening the false-positive bound below. False-positive probability
// is at most 4^-rounds. Grounded on original_source/algebra/src/utils/prime.rs.
func ProbablyPrime[T Word](m BarrettModulus[T], rounds int, nextWitness func(lo, hi uint64) uint64) bool {
	value := uint64(m.Value())
	if value < 2 {
		return false
	}
	if value < 64 {
		return primeBitMask&(1<<value) != 0
	}
	if value&1 == 0 {
		return false
	}
	for _, d := range smallSievePrimes {
		if value == d {
			return true
		}
		if value%d == 0 {
			return false
		}
	}

	valueSubOne := value - 1
	r := 0
	q := valueSubOne
	for q&1 == 0 {
		q >>= 1
		r++
	}

roundLoop:
	for i := 0; i < rounds; i++ {
		var a uint64
		if i == 0 {
			a = 2
		} else {
			// upper bound deliberately excludes valueSubOne itself (see doc comment above).
			a = nextWitness(3, valueSubOne-1)
		}

		x := PowReduce(T(a), q, m)
		if uint64(x) == 1 || uint64(x) == valueSubOne {
			continue
		}
		for j := 0; j < r-1; j++ {
			lo, hi := WidenMul(x, x)
			x = m.ReduceWide(lo, hi)
			if uint64(x) == valueSubOne {
				continue roundLoop
			}
			if uint64(x) == 1 {
				return false
			}
		}
		return false
	}
	return true
}
