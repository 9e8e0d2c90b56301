package plonk

import (
	"github.com/Arnav-panjla/Plonk-library/internal/circuit"
)

// Circuit is a fixed-capacity, append-only list of arithmetic gates
// with per-position selector columns.
type Circuit = circuit.Circuit

// Gate relates three wires under an addition or multiplication constraint.
type Gate = circuit.Gate

// Wire is a value carried on a numbered wire of the circuit.
type Wire = circuit.Wire

// GateType distinguishes addition and multiplication gates.
type GateType = circuit.GateType

const (
	AddGate = circuit.AddGate
	MulGate = circuit.MulGate
)

// NewCircuit creates an empty circuit with room for `capacity` gates.
func NewCircuit(capacity int) *Circuit {
	return circuit.New(capacity)
}
