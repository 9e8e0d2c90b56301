package kzg

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/Arnav-panjla/Plonk-library/internal/poly"
)

// Commitment to a polynomial: [f(alpha)]G1 for the setup secret alpha.
type Commitment = bls12381.G1Affine

// Polynomial in monomial (coefficient) form.
type Polynomial = poly.Polynomial

// Proof to the claim that a polynomial f(x) was evaluated at a point `a` and
// resulted in `f(a)`
type OpeningProof struct {
	// QuotientComm is the commitment to the quotient polynomial (f - f(a))/(x-a)
	QuotientComm bls12381.G1Affine

	// Point that we are evaluating the polynomial at : `a`
	InputPoint fr.Element

	// ClaimedValue purported value : `f(a)`
	ClaimedValue fr.Element
}

// Commit commits to a polynomial using a multi exponentiation with the SRS.
// The polynomial is given in coefficient form, so the commitment is
// Σ_i coeff_i * [alpha^i]G1 = [f(alpha)]G1.
func Commit(p Polynomial, ck *CommitKey) (*Commitment, error) {
	if len(p) == 0 || len(p) > len(ck.G1) {
		return nil, ErrInvalidPolynomialSize
	}

	var res Commitment
	if _, err := res.MultiExp(ck.G1[:len(p)], p, ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}

	return &res, nil
}
