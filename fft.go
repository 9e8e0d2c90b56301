package plonk

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/Arnav-panjla/Plonk-library/internal/domain"
)

// EvaluationDomain is a power-of-two sized multiplicative subgroup of
// the scalar field, generated by a primitive root of unity.
type EvaluationDomain = domain.Domain

// NewEvaluationDomain returns a domain whose size is the smallest
// power of two that is >= m.
func NewEvaluationDomain(m uint64) *EvaluationDomain {
	return domain.NewDomain(m)
}

// Fft transforms polynomial coefficients to evaluations over the
// subgroup generated by `omega`, in place. `omega` must be a primitive
// n'th root of unity for n == len(values).
func Fft(values []fr.Element, omega fr.Element) error {
	return domain.Fft(values, omega)
}

// Ifft transforms evaluations back to polynomial coefficients, in
// place, given the inverse of the root used in the forward transform.
func Ifft(values []fr.Element, omegaInv fr.Element) error {
	return domain.Ifft(values, omegaInv)
}

// Interpolate recovers the coefficients of the polynomial that takes
// the given evaluations over `points`, which must be the roots of
// unity in natural order.
func Interpolate(evals []fr.Element, points []fr.Element) ([]fr.Element, error) {
	return domain.Interpolate(evals, points)
}
