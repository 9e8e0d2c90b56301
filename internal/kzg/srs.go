package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Key used to verify opening proofs
type OpeningKey struct {
	GenG1   bls12381.G1Affine
	GenG2   bls12381.G2Affine
	AlphaG2 bls12381.G2Affine
}

// Key used to make commitments and opening proofs.
// G1[i] = [alpha^i]G1 for the setup secret alpha, so a polynomial of
// degree d needs G1 to hold at least d+1 points.
type CommitKey struct {
	G1 []bls12381.G1Affine
}

// MaxDegree returns the largest polynomial degree the key can commit to.
func (ck *CommitKey) MaxDegree() uint64 {
	return uint64(len(ck.G1) - 1)
}

// Structured reference string (SRS) for making
// and verifying KZG proofs
type SRS struct {
	CommitKey  CommitKey
	OpeningKey OpeningKey
}

// NewSRS runs a simulated trusted setup supporting polynomials up to
// `degree`. The secret scalar is sampled from a cryptographically
// secure source and exists only for the duration of this call; no
// field of the returned SRS retains it.
//
// A real deployment would derive these points from a multi-party
// ceremony instead.
func NewSRS(degree uint64) (*SRS, error) {
	var secret fr.Element
	if _, err := secret.SetRandom(); err != nil {
		return nil, err
	}

	var bAlpha big.Int
	secret.BigInt(&bAlpha)

	return NewSRSInsecure(degree, &bAlpha)
}

// NewSRSInsecure builds an SRS from a caller-supplied secret.
// Note that since we provide the secret scalar as input,
// this method should never be used in production. It is only
// useful for deterministic tests.
func NewSRSInsecure(degree uint64, bAlpha *big.Int) (*SRS, error) {
	size := degree + 1

	var commitKey CommitKey
	var openKey OpeningKey
	commitKey.G1 = make([]bls12381.G1Affine, size)

	var alpha fr.Element
	alpha.SetBigInt(bAlpha)

	_, _, gen1Aff, gen2Aff := bls12381.Generators()
	commitKey.G1[0] = gen1Aff
	openKey.GenG1 = gen1Aff
	openKey.GenG2 = gen2Aff
	openKey.AlphaG2.ScalarMultiplication(&gen2Aff, bAlpha)

	if size > 1 {
		alphas := make([]fr.Element, size-1)
		alphas[0] = alpha
		for i := 1; i < len(alphas); i++ {
			alphas[i].Mul(&alphas[i-1], &alpha)
		}
		g1s := bls12381.BatchScalarMultiplicationG1(&gen1Aff, alphas)
		copy(commitKey.G1[1:], g1s)
	}

	return &SRS{
		CommitKey:  commitKey,
		OpeningKey: openKey,
	}, nil
}
