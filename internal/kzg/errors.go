package kzg

import "errors"

var (
	ErrInvalidPolynomialSize = errors.New("invalid polynomial size (larger than SRS or == 0)")
	ErrVerifyOpeningProof    = errors.New("can't verify opening proof")
	ErrInexactDivision       = errors.New("claimed value is inconsistent with the polynomial: division by (x-z) left a remainder")
)
