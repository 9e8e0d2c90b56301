package poly

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// Polynomial in coefficient form; index i holds the coefficient of x^i.
type Polynomial = []fr.Element

// Degree returns the index of the highest non-zero coefficient,
// or -1 for the zero polynomial.
func Degree(p Polynomial) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Eval evaluates a polynomial f(x) at a point `z`; f(z)
// We denote `z` as `inputPoint`
func Eval(p Polynomial, inputPoint fr.Element) fr.Element {
	result := fr.NewElement(0)

	for i := len(p) - 1; i >= 0; i-- {
		tmp := fr.Element{}
		tmp.Mul(&result, &inputPoint)
		result.Add(&tmp, &p[i])
	}

	return result
}

// Add returns a + b. The result has the length of the longer input.
func Add(a, b Polynomial) Polynomial {
	short, long := a, b
	if len(a) > len(b) {
		short, long = b, a
	}

	result := make(Polynomial, len(long))
	copy(result, long)
	for i := 0; i < len(short); i++ {
		result[i].Add(&result[i], &short[i])
	}

	return result
}

// Sub returns a - b. The result has the length of the longer input.
func Sub(a, b Polynomial) Polynomial {
	result := make(Polynomial, max(len(a), len(b)))
	for i := range result {
		var ai, bi fr.Element
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		result[i].Sub(&ai, &bi)
	}

	return result
}

// DivideByXminusA computes f(x) / (x - a) via synthetic division and
// returns the quotient along with the remainder. The division is exact
// iff the remainder is zero, which happens iff f(a) == 0.
//
// This was copied and modified from the gnark codebase.
func DivideByXminusA(p Polynomial, a fr.Element) (quotient Polynomial, remainder fr.Element) {
	if len(p) == 0 {
		return Polynomial{}, fr.Element{}
	}

	// clone the slice so we do not modify the slice in place
	working := make(Polynomial, len(p))
	copy(working, p)

	var t fr.Element
	for i := len(working) - 2; i >= 0; i-- {
		t.Mul(&working[i+1], &a)
		working[i].Add(&working[i], &t)
	}

	// working[0] accumulated f(a); the rest is the quotient,
	// which is of degree deg(f)-1
	return working[1:], working[0]
}
