package domain

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/Arnav-panjla/Plonk-library/internal/utils"
)

// In this file we implement a simple radix-2 version of the fft algorithm
// without any optimizations. This is sufficient as the fft algorithm is
// not on the hot path; we only need it to move polynomials between
// coefficient and evaluation form.
//
// See: https://faculty.sites.iastate.edu/jia/files/inline-files/polymultiply.pdf
// for a reference.

// Fft performs an in-place Cooley-Tukey FFT on `values`.
//
// `nthRootOfUnity` must be a primitive n'th root of unity, where
// n == len(values). The slice afterwards holds the evaluations of the
// input polynomial at `w^0, w^1, ..., w^{n-1}` in natural order.
func Fft(values []fr.Element, nthRootOfUnity fr.Element) error {
	if !utils.IsPowerOfTwo(uint64(len(values))) {
		return ErrNotPowerOfTwo
	}

	fftInPlace(values, nthRootOfUnity)
	return nil
}

// Ifft performs an in-place inverse FFT on `values`, given the
// inverse of the primitive n'th root of unity used in the forward
// transform.
func Ifft(values []fr.Element, inverseRootOfUnity fr.Element) error {
	if !utils.IsPowerOfTwo(uint64(len(values))) {
		return ErrNotPowerOfTwo
	}

	fftInPlace(values, inverseRootOfUnity)

	// scale by the inverse of the domain size
	var nInv fr.Element
	nInv.SetUint64(uint64(len(values)))
	nInv.Inverse(&nInv)

	for i := 0; i < len(values); i++ {
		values[i].Mul(&values[i], &nInv)
	}

	return nil
}

// Interpolate recovers the coefficients of the polynomial whose
// evaluations over `points` are `evals`. `points` must be the roots of
// unity in natural order, so points[1] is the primitive n'th root.
func Interpolate(evals []fr.Element, points []fr.Element) ([]fr.Element, error) {
	if len(evals) != len(points) {
		return nil, ErrDomainSizeMismatch
	}

	n := len(evals)
	coeffs := make([]fr.Element, n)
	copy(coeffs, evals)

	if n == 1 {
		return coeffs, nil
	}

	// points[1]^(n-1) == points[1]^(-1) since points[1] has order n
	var inverseRootOfUnity fr.Element
	inverseRootOfUnity.Exp(points[1], big.NewInt(int64(n-1)))

	if err := Ifft(coeffs, inverseRootOfUnity); err != nil {
		return nil, err
	}

	return coeffs, nil
}

// fftInPlace is a radix-2 decimation-in-time transform: the input is
// first put into bit-reversed order, then butterflies are combined
// bottom-up, doubling the sub-transform width at each stage.
func fftInPlace(values []fr.Element, nthRootOfUnity fr.Element) {
	n := len(values)
	if n == 1 {
		return
	}

	BitReverse(values)

	for m := 1; m < n; m *= 2 {
		halfWidth := m
		width := m * 2

		// stage twiddle: primitive width'th root of unity
		var wM fr.Element
		wM.Exp(nthRootOfUnity, big.NewInt(int64(n/width)))

		for k := 0; k < n; k += width {
			w := fr.One()
			for j := 0; j < halfWidth; j++ {
				var t fr.Element
				t.Mul(&w, &values[k+j+halfWidth])
				values[k+j+halfWidth].Sub(&values[k+j], &t)
				values[k+j].Add(&values[k+j], &t)

				w.Mul(&w, &wM)
			}
		}
	}
}

// FftFr evaluates `values` (viewed as polynomial coefficients) over the
// domain. Returns a newly allocated slice with the result.
func (d *Domain) FftFr(values []fr.Element) ([]fr.Element, error) {
	if uint64(len(values)) != d.Cardinality {
		return nil, ErrDomainSizeMismatch
	}

	output := make([]fr.Element, len(values))
	copy(output, values)

	if err := Fft(output, d.Generator); err != nil {
		return nil, err
	}
	return output, nil
}

// IfftFr converts evaluations over the domain back to polynomial
// coefficients. Returns a newly allocated slice with the result.
func (d *Domain) IfftFr(values []fr.Element) ([]fr.Element, error) {
	if uint64(len(values)) != d.Cardinality {
		return nil, ErrDomainSizeMismatch
	}

	output := make([]fr.Element, len(values))
	copy(output, values)

	if err := Ifft(output, d.GeneratorInv); err != nil {
		return nil, err
	}
	return output, nil
}

// Interpolate recovers the coefficients of the polynomial whose
// evaluations over the domain's roots are `evals`.
func (d *Domain) Interpolate(evals []fr.Element) ([]fr.Element, error) {
	return Interpolate(evals, d.Roots)
}
