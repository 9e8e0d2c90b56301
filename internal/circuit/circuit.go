package circuit

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var ErrCircuitFull = errors.New("circuit is full, cannot add more gates")

// GateType distinguishes the two supported gate constraints.
type GateType uint8

const (
	// AddGate constrains left + right == output
	AddGate GateType = iota
	// MulGate constrains left * right == output
	MulGate
)

// Wire is a value carried on a numbered wire of the circuit.
type Wire struct {
	Index int
	Value fr.Element
}

// Gate relates three wires under an addition or multiplication constraint.
type Gate struct {
	Type   GateType
	Left   Wire
	Right  Wire
	Output Wire
}

// Selectors are the per-position indicator columns. For a position
// occupied by a gate, exactly one of QAdd/QMul is one and the other is
// zero. QC is reserved for constant terms and is never set here.
type Selectors struct {
	QAdd []fr.Element
	QMul []fr.Element
	QC   []fr.Element
}

// Circuit is a fixed-capacity, append-only list of gates together with
// the wire value columns a, b, c and the selector columns.
type Circuit struct {
	// capacity is the number of gate positions; selector columns are
	// pre-sized to it and never grow
	capacity int

	// Wire value columns; entry i belongs to the gate at position i
	A []fr.Element
	B []fr.Element
	C []fr.Element

	Gates     []Gate
	Selectors Selectors
}

// New creates an empty circuit with room for `capacity` gates.
func New(capacity int) *Circuit {
	return &Circuit{
		capacity: capacity,
		A:        make([]fr.Element, 0, capacity),
		B:        make([]fr.Element, 0, capacity),
		C:        make([]fr.Element, 0, capacity),
		Gates:    make([]Gate, 0, capacity),
		Selectors: Selectors{
			QAdd: make([]fr.Element, capacity),
			QMul: make([]fr.Element, capacity),
			QC:   make([]fr.Element, capacity),
		},
	}
}

// Capacity returns the number of gate positions in the circuit.
func (c *Circuit) Capacity() int {
	return c.capacity
}

// NumGates returns the number of gates added so far.
func (c *Circuit) NumGates() int {
	return len(c.Gates)
}

// AddGate appends a gate at the next free position, recording its wire
// values in the a/b/c columns and raising the matching selector.
// Returns ErrCircuitFull once capacity gates have been added.
func (c *Circuit) AddGate(gate Gate) error {
	idx := len(c.Gates)
	if idx >= c.capacity {
		return ErrCircuitFull
	}

	one := fr.One()
	switch gate.Type {
	case AddGate:
		c.Selectors.QAdd[idx] = one
	case MulGate:
		c.Selectors.QMul[idx] = one
	}

	c.A = append(c.A, gate.Left.Value)
	c.B = append(c.B, gate.Right.Value)
	c.C = append(c.C, gate.Output.Value)
	c.Gates = append(c.Gates, gate)

	return nil
}

// VerifyConstraints reports whether every recorded gate satisfies its
// constraint: a + b == c for addition gates, a * b == c for
// multiplication gates. The scan is read-only.
func (c *Circuit) VerifyConstraints() bool {
	for i, gate := range c.Gates {
		var expected fr.Element
		switch gate.Type {
		case AddGate:
			expected.Add(&c.A[i], &c.B[i])
		case MulGate:
			expected.Mul(&c.A[i], &c.B[i])
		}

		if !expected.Equal(&c.C[i]) {
			return false
		}
	}
	return true
}
