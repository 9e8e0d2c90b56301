package domain

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func TestRootsSmoke(t *testing.T) {
	domainSize := uint64(4)
	domain := NewDomain(domainSize)

	roots := domain.Roots

	for i := 0; i < len(roots); i++ {
		var expected fr.Element
		expected.Exp(domain.Generator, big.NewInt(int64(i)))
		if !expected.Equal(&roots[i]) {
			t.Fatalf("root at index %d is not the corresponding power of the generator", i)
		}
	}
}

func TestGeneratorOrder(t *testing.T) {
	for _, size := range []uint64{1, 2, 4, 8, 16, 64} {
		domain := NewDomain(size)
		n := domain.Cardinality

		one := fr.One()

		var acc fr.Element
		acc.Exp(domain.Generator, big.NewInt(int64(n)))
		if !acc.Equal(&one) {
			t.Fatalf("generator does not have order %d", n)
		}

		// primitivity: the order of the generator divides n,
		// so it is enough to check that w^(n/2) != 1
		if n > 1 {
			acc.Exp(domain.Generator, big.NewInt(int64(n/2)))
			if acc.Equal(&one) {
				t.Fatalf("generator has order smaller than %d", n)
			}
		}
	}
}

func TestGeneratorInv(t *testing.T) {
	domain := NewDomain(8)

	one := fr.One()
	var product fr.Element
	product.Mul(&domain.Generator, &domain.GeneratorInv)
	if !product.Equal(&one) {
		t.Error("GeneratorInv is not the inverse of Generator")
	}

	var nInv fr.Element
	nInv.SetUint64(domain.Cardinality)
	nInv.Inverse(&nInv)
	if !nInv.Equal(&domain.CardinalityInv) {
		t.Error("CardinalityInv is not the inverse of the domain size")
	}
}

func TestNextPowerOfTwoRounding(t *testing.T) {
	domain := NewDomain(5)
	if domain.Cardinality != 8 {
		t.Errorf("domain size should have been rounded up to 8, got %d", domain.Cardinality)
	}
	if len(domain.Roots) != 8 {
		t.Errorf("expected 8 roots, got %d", len(domain.Roots))
	}
}

func TestFindRootIndex(t *testing.T) {
	domain := NewDomain(16)

	for i, root := range domain.Roots {
		if domain.FindRootIndex(root) != i {
			t.Fatalf("root at index %d was not found at index %d", i, i)
		}
	}

	// a point outside of the domain
	outside := fr.NewElement(12345)
	for domain.IsInDomain(outside) {
		outside.Add(&outside, &outside)
	}
	if domain.FindRootIndex(outside) != -1 {
		t.Error("point outside of the domain was reported as a root")
	}
}

func TestBitReverse(t *testing.T) {
	list := []int{0, 1, 2, 3, 4, 5, 6, 7}
	BitReverse(list)
	expected := []int{0, 4, 2, 6, 1, 5, 3, 7}
	for i := range list {
		if list[i] != expected[i] {
			t.Fatalf("bit reversal permutation incorrect at index %d", i)
		}
	}

	// applying the permutation twice gives back the identity
	BitReverse(list)
	for i := range list {
		if list[i] != i {
			t.Fatalf("bit reversal is not an involution")
		}
	}
}
