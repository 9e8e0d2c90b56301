// Package plonk provides KZG polynomial commitments over BLS12-381,
// the FFT machinery used to move polynomials between coefficient and
// evaluation form, and a selector-based arithmetic circuit model.
package plonk

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/Arnav-panjla/Plonk-library/internal/kzg"
)

// Commitment is a single G1 point binding a prover to one polynomial.
type Commitment = kzg.Commitment

// OpeningProof attests that the committed polynomial evaluates to
// ClaimedValue at InputPoint.
type OpeningProof = kzg.OpeningProof

// Polynomial in coefficient form; index i holds the coefficient of x^i.
type Polynomial = kzg.Polynomial

// Context holds the structured reference string needed to create and
// verify proofs. It is immutable after construction and safe to share
// across goroutines.
type Context struct {
	commitKey *kzg.CommitKey
	openKey   *kzg.OpeningKey
}

// NewContext runs a simulated trusted setup supporting polynomials up
// to `maxDegree`, sampling the setup secret from a cryptographically
// secure source and discarding it before returning.
func NewContext(maxDegree uint64) (*Context, error) {
	srs, err := kzg.NewSRS(maxDegree)
	if err != nil {
		return nil, err
	}

	return &Context{
		commitKey: &srs.CommitKey,
		openKey:   &srs.OpeningKey,
	}, nil
}

// NewContextInsecure creates a context from a known trusted setup
// secret. As the name implies, this should only be used for testing.
func NewContextInsecure(maxDegree uint64, trustedSetupSecret int64) *Context {
	srs, err := kzg.NewSRSInsecure(maxDegree, big.NewInt(trustedSetupSecret))
	if err != nil {
		panic(fmt.Sprintf("could not create context: %s", err))
	}

	return &Context{
		commitKey: &srs.CommitKey,
		openKey:   &srs.OpeningKey,
	}
}

// MaxDegree returns the largest polynomial degree the context supports.
func (c *Context) MaxDegree() uint64 {
	return c.commitKey.MaxDegree()
}

// CommitToPoly commits to a polynomial in coefficient form.
func (c *Context) CommitToPoly(p Polynomial) (*Commitment, error) {
	return kzg.Commit(p, c.commitKey)
}

// CommitToPolys commits to several independent polynomials, running
// the commitments concurrently. This is not a batched commitment
// scheme; each returned commitment is exactly what CommitToPoly would
// produce for the corresponding input.
func (c *Context) CommitToPolys(polys []Polynomial) ([]Commitment, error) {
	commitments := make([]Commitment, len(polys))

	var errG errgroup.Group
	for i := range polys {
		i := i
		errG.Go(func() error {
			comm, err := kzg.Commit(polys[i], c.commitKey)
			if err != nil {
				return err
			}
			commitments[i].Set(comm)
			return nil
		})
	}

	if err := errG.Wait(); err != nil {
		return nil, err
	}
	return commitments, nil
}

// Open evaluates the polynomial at `point` and returns a proof of the
// evaluation alongside the claimed value.
func (c *Context) Open(p Polynomial, point fr.Element) (OpeningProof, error) {
	return kzg.Open(p, point, c.commitKey)
}

// Verify checks an opening proof against a commitment. A nil error
// means the proof was accepted; ErrVerifyOpeningProof means it was
// rejected.
func (c *Context) Verify(commitment *Commitment, proof *OpeningProof) error {
	return kzg.Verify(commitment, proof, c.openKey)
}
