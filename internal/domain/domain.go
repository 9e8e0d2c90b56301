package domain

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/Arnav-panjla/Plonk-library/internal/utils"
)

// Domain is the set of points that polynomials are evaluated over.
// To enable efficient FFT-based algorithms, these points are chosen
// as the 2^i'th roots of unity in the scalar field, and we precompute
// and store the group generator together with its inverse.
type Domain struct {
	Cardinality    uint64
	CardinalityInv fr.Element

	// Generator for the multiplicative subgroup
	// Not the primitive generator for the field
	Generator    fr.Element
	GeneratorInv fr.Element

	// Roots of unity for the multiplicative subgroup
	Roots []fr.Element
}

// NewDomain returns a domain whose cardinality is the smallest power
// of two that is >= m.
//
// Copied and modified from fft.NewDomain in gnark-crypto.
func NewDomain(m uint64) *Domain {
	domain := &Domain{}
	x := ecc.NextPowerOfTwo(m)
	domain.Cardinality = x

	// generator of the largest 2-adic subgroup
	var rootOfUnity fr.Element
	_, err := rootOfUnity.SetString("10238227357739495823651030575849232062558860180284477541189508159991286009131")
	if err != nil {
		panic("failed to initialize root of unity")
	}
	const maxOrderRoot uint64 = 32

	// find generator for Z/2^(log(m))Z
	logx := uint64(bits.TrailingZeros64(x))
	if logx > maxOrderRoot {
		panic(fmt.Sprintf("m (%d) is too big: the required root of unity does not exist", m))
	}

	// Generator = rootOfUnity^(2^(maxOrderRoot - logx)) has order x
	expo := uint64(1 << (maxOrderRoot - logx))
	domain.Generator.Exp(rootOfUnity, big.NewInt(int64(expo)))
	domain.GeneratorInv.Inverse(&domain.Generator)
	domain.CardinalityInv.SetUint64(x).Inverse(&domain.CardinalityInv)

	// Compute the roots of unity for the multiplicative subgroup
	domain.Roots = make([]fr.Element, x)
	current := fr.One()
	for i := uint64(0); i < x; i++ {
		domain.Roots[i] = current
		current.Mul(&current, &domain.Generator)
	}

	return domain
}

// BitReverse applies the bit-reversal permutation to `list`.
// `len(list)` must be a power of 2
// Taken and modified from gnark-crypto
func BitReverse[K interface{}](list []K) {
	n := uint64(len(list))
	if !utils.IsPowerOfTwo(n) {
		panic("size of list must be a power of two")
	}

	shift := uint64(64 - bits.TrailingZeros64(n))

	for i := uint64(0); i < n; i++ {
		irev := bits.Reverse64(i) >> shift
		if irev > i {
			list[i], list[irev] = list[irev], list[i]
		}
	}
}

// Returns the index of the element in the domain or -1 if it
// is not an element in the domain
func (d Domain) FindRootIndex(point fr.Element) int {
	for i := 0; i < int(d.Cardinality); i++ {
		if point.Equal(&d.Roots[i]) {
			return i
		}
	}
	return -1
}

// Returns true if the field element is in the domain
func (d Domain) IsInDomain(point fr.Element) bool {
	return d.FindRootIndex(point) != -1
}
