// Package ntt implements the negacyclic Number Theoretic Transform
// engine: primitive-root search, bit-reversed root tables, the
// Harvey-style lazy forward/inverse butterflies, and the monomial
// transform. Grounded on
// original_source/algebra/src/transformation/ntt_table.rs.
package ntt

import (
	"reflect"
	"sync"

	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/reduce"
)

// Table is the immutable precomputation bound to a specific log_n.
type Table[M field.Modulus] struct {
	logN    int
	n       int
	p       uint64
	twiceP  uint64
	root    uint64
	invRoot uint64

	invDegree reduce.ShoupFactor[uint64]

	rootPowers        []reduce.ShoupFactor[uint64]
	invRootPowers     []reduce.ShoupFactor[uint64]
	ordinalRootPowers []reduce.ShoupFactor[uint64]
	reverseLsbs       []int
}

// RandRange must return a value sampled uniformly from [lo, hi]
// inclusive; passed in so this package stays independent of any
// specific RNG implementation.
type RandRange func(lo, hi uint64) uint64

type cacheKey struct {
	t    reflect.Type
	logN int
}

var tableCache sync.Map // map[cacheKey]*Table[M], boxed as any
var tableCacheMu sync.Mutex

// GetTable returns the cached Table for (M, logN), computing and
// publishing it under a lock if absent — the single mutable global
// per field named by spec.md §5.
func GetTable[M field.Modulus](logN int, rr RandRange) (*Table[M], error) {
	var zero M
	key := cacheKey{t: reflect.TypeOf(zero), logN: logN}
	if v, ok := tableCache.Load(key); ok {
		return v.(*Table[M]), nil
	}
	tableCacheMu.Lock()
	defer tableCacheMu.Unlock()
	if v, ok := tableCache.Load(key); ok {
		return v.(*Table[M]), nil
	}
	t, err := NewTable[M](logN, rr)
	if err != nil {
		return nil, err
	}
	tableCache.Store(key, t)
	return t, nil
}

// NewTable constructs a fresh Table for the given log_n, searching for
// a primitive 2N-th root of unity by random sampling (up to 100
// trials) and normalizing to the minimal representative among the
// primitive roots, per spec.md §4.4.
func NewTable[M field.Modulus](logN int, rr RandRange) (*Table[M], error) {
	p := field.Modulus_[M]()
	n := 1 << logN
	twoN := uint64(2 * n)
	if (p-1)%twoN != 0 {
		return nil, ErrNoPrimitiveRoot
	}
	bm, err := reduce.NewBarrettModulus[uint64](p)
	if err != nil {
		return nil, err
	}

	var root uint64
	found := false
	exp := (p - 1) / twoN
	for try := 0; try < 100; try++ {
		g := rr(2, p-1)
		w := reduce.PowReduce(g, exp, bm)
		wn := reduce.PowReduce(w, uint64(n), bm)
		if wn == p-1 {
			root = w
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNoPrimitiveRoot
	}

	// Normalize to the minimal primitive 2N-th root: the primitive
	// roots are exactly {root^k : k odd, 0<k<2N}; step by root^2 each
	// time (root^(k+2) = root^k * root^2) and keep the smallest value.
	step := reduce.PowReduce(root, 2, bm)
	cur := root
	min := root
	for i := 1; i < n; i++ {
		cur = mul(cur, step, bm)
		if cur < min {
			min = cur
		}
	}
	root = min

	invRoot, err := reduce.InvReduce(root, bm)
	if err != nil {
		return nil, err
	}

	ordinal := make([]reduce.ShoupFactor[uint64], twoN)
	cur = 1
	for i := uint64(0); i < twoN; i++ {
		ordinal[i] = reduce.NewShoupFactor(cur, p)
		cur = mul(cur, root, bm)
	}

	reverseLsbs := make([]int, n)
	for i := 0; i < n; i++ {
		reverseLsbs[i] = reverseBits(i, logN)
	}

	rootOne := ordinal[0]
	rootPowers := make([]reduce.ShoupFactor[uint64], n)
	rootPowers[0] = rootOne
	for i := 0; i < n; i++ {
		rootPowers[reverseLsbs[i]] = ordinal[i]
	}

	invRootPowers := make([]reduce.ShoupFactor[uint64], n)
	invRootPowers[0] = rootOne
	// Walk ordinal[N+1 .. 2N) in reverse, placing at reverseLsbs[i]+1.
	idx := 0
	for i := int(twoN) - 1; i >= n+1; i-- {
		invRootPowers[reverseLsbs[idx]+1] = ordinal[i]
		idx++
	}

	nInv, err := reduce.InvReduce(uint64(n), bm)
	if err != nil {
		return nil, err
	}
	invDegree := reduce.NewShoupFactor(nInv, p)

	return &Table[M]{
		logN: logN, n: n, p: p, twiceP: 2 * p,
		root: root, invRoot: invRoot,
		invDegree:         invDegree,
		rootPowers:        rootPowers,
		invRootPowers:     invRootPowers,
		ordinalRootPowers: ordinal,
		reverseLsbs:       reverseLsbs,
	}, nil
}

func mul(a, b uint64, bm reduce.BarrettModulus[uint64]) uint64 {
	lo, hi := reduce.WidenMul(a, b)
	return bm.ReduceWide(lo, hi)
}

func reverseBits(i, logN int) int {
	r := 0
	for b := 0; b < logN; b++ {
		r = (r << 1) | (i & 1)
		i >>= 1
	}
	return r
}

func (t *Table[M]) N() int          { return t.n }
func (t *Table[M]) LogN() int       { return t.logN }
func (t *Table[M]) Root() uint64    { return t.root }
func (t *Table[M]) InvRoot() uint64 { return t.invRoot }
