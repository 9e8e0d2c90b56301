package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/Arnav-panjla/Plonk-library/internal/poly"
)

// Open creates a KZG proof that the polynomial f(x), given in
// coefficient form, evaluates to f(a) at the point `a`.
func Open(p Polynomial, point fr.Element, ck *CommitKey) (OpeningProof, error) {
	if len(p) == 0 || len(p) > len(ck.G1) {
		return OpeningProof{}, ErrInvalidPolynomialSize
	}

	res := OpeningProof{
		InputPoint:   point,
		ClaimedValue: poly.Eval(p, point),
	}

	// compute the quotient polynomial q(x) = (f(x) - f(a)) / (x - a)
	numerator := poly.Sub(p, Polynomial{res.ClaimedValue})
	quotient, remainder := poly.DivideByXminusA(numerator, point)

	// the numerator vanishes at `point`, so the division is exact;
	// a non-zero remainder means the evaluation above was inconsistent
	if !remainder.IsZero() {
		return OpeningProof{}, ErrInexactDivision
	}

	if len(quotient) == 0 {
		// constant polynomial; the quotient is the zero polynomial
		quotient = Polynomial{fr.Element{}}
	}

	quotientCommit, err := Commit(quotient, ck)
	if err != nil {
		return OpeningProof{}, err
	}
	res.QuotientComm.Set(quotientCommit)

	return res, nil
}
