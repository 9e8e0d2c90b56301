package kzg

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Sanity checks on the group the commitments live in. These mirror the
// algebraic assumptions the scheme relies on rather than testing
// gnark-crypto itself.

func randG1Jac(t *testing.T) bls12381.G1Jac {
	t.Helper()

	var k fr.Element
	if _, err := k.SetRandom(); err != nil {
		t.Fatal(err)
	}
	var kBI big.Int
	k.BigInt(&kBI)

	g1Jac, _, _, _ := bls12381.Generators()
	var point bls12381.G1Jac
	point.ScalarMultiplication(&g1Jac, &kBI)
	return point
}

func TestGroupLaw(t *testing.T) {
	a := randG1Jac(t)
	b := randG1Jac(t)

	// (a+b) + (a-b) == a.double()
	var sum, diff, lhs, rhs bls12381.G1Jac
	sum.Set(&a).AddAssign(&b)
	diff.Set(&a).SubAssign(&b)
	lhs.Set(&sum).AddAssign(&diff)
	rhs.Double(&a)
	if !lhs.Equal(&rhs) {
		t.Error("(a+b) + (a-b) should equal 2a")
	}

	// (-a) + a == zero
	var neg bls12381.G1Jac
	neg.Neg(&a)
	neg.AddAssign(&a)

	var got bls12381.G1Affine
	got.FromJacobian(&neg)
	if !got.IsInfinity() {
		t.Error("a + (-a) should be the identity")
	}
}

func TestScalarMultiplicationConsistency(t *testing.T) {
	c := randG1Jac(t)

	var k fr.Element
	for {
		if _, err := k.SetRandom(); err != nil {
			t.Fatal(err)
		}
		if !k.IsZero() {
			break
		}
	}

	var kInv fr.Element
	kInv.Inverse(&k)

	var kBI, kInvBI big.Int
	k.BigInt(&kBI)
	kInv.BigInt(&kInvBI)

	var scaled bls12381.G1Jac
	scaled.ScalarMultiplication(&c, &kBI)
	scaled.ScalarMultiplication(&scaled, &kInvBI)

	if !scaled.Equal(&c) {
		t.Error("(c*k)*k^-1 should equal c")
	}
}

func TestPairingBilinearity(t *testing.T) {
	_, _, g1Aff, g2Aff := bls12381.Generators()

	a := fr.NewElement(31)
	b := fr.NewElement(41)
	var aBI, bBI, abBI big.Int
	a.BigInt(&aBI)
	b.BigInt(&bBI)
	var ab fr.Element
	ab.Mul(&a, &b)
	ab.BigInt(&abBI)

	var aP bls12381.G1Affine
	aP.ScalarMultiplication(&g1Aff, &aBI)
	var bQ bls12381.G2Affine
	bQ.ScalarMultiplication(&g2Aff, &bBI)

	lhs, err := bls12381.Pair([]bls12381.G1Affine{aP}, []bls12381.G2Affine{bQ})
	if err != nil {
		t.Fatal(err)
	}

	var abP bls12381.G1Affine
	abP.ScalarMultiplication(&g1Aff, &abBI)
	rhs, err := bls12381.Pair([]bls12381.G1Affine{abP}, []bls12381.G2Affine{g2Aff})
	if err != nil {
		t.Fatal(err)
	}

	if !lhs.Equal(&rhs) {
		t.Error("e(aP, bQ) should equal e(abP, Q)")
	}
}
