package domain

import "errors"

var (
	ErrNotPowerOfTwo      = errors.New("size of input must be a power of two")
	ErrDomainSizeMismatch = errors.New("domain size does not equal the number of evaluations")
)
