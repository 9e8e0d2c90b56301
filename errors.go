package plonk

import (
	"github.com/Arnav-panjla/Plonk-library/internal/circuit"
	"github.com/Arnav-panjla/Plonk-library/internal/domain"
	"github.com/Arnav-panjla/Plonk-library/internal/kzg"
)

var (
	// ErrInvalidPolynomialSize is returned when committing to a
	// polynomial that is empty or larger than the SRS supports.
	ErrInvalidPolynomialSize = kzg.ErrInvalidPolynomialSize
	// ErrVerifyOpeningProof is returned when an opening proof is rejected.
	ErrVerifyOpeningProof = kzg.ErrVerifyOpeningProof
	// ErrCircuitFull is returned when adding a gate past the circuit's capacity.
	ErrCircuitFull = circuit.ErrCircuitFull
	// ErrNotPowerOfTwo is returned by the FFT routines when the input
	// length is not a power of two.
	ErrNotPowerOfTwo = domain.ErrNotPowerOfTwo
	// ErrDomainSizeMismatch is returned when interpolating evaluations
	// whose length disagrees with the domain.
	ErrDomainSizeMismatch = domain.ErrDomainSizeMismatch
)
