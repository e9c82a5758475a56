// Package ops is the operator table: it binds operator names to their type
// relation, arity and fusion pattern. Operators are registered at module
// initialization (single-threaded) and only looked up afterwards.
package ops

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/gomlx/opir/rel"
)

// PatternKind classifies how an operator maps output axes to input axes,
// used by graph fusion.
type PatternKind int

//go:generate go tool enumer -type=PatternKind ops.go

const (
	// ElemWise operations map each output element to the same input element.
	ElemWise PatternKind = iota

	// Broadcast operators can always map an output axis to an input axis in
	// order; transpose is not one, since the axes must stay in order.
	Broadcast

	// Injective operators map each output axis to a single input axis. Still
	// safe to fuse into injective and reduction operators.
	Injective

	// CommReduce are commutative reductions.
	CommReduce

	// OutFusable are complex operations that can still fuse elementwise
	// operations into their output, but cannot chain another complex op.
	OutFusable

	// Tuple nodes can fuse into subsequent injective ops, but are treated
	// specially.
	Tuple

	// Opaque operations cannot fuse anything.
	Opaque
)

// Op describes a registered operator.
type Op struct {
	// Name of the operator, e.g. "add".
	Name string

	// NumInputs the operator takes. Its relation sees NumInputs+1 type slots
	// (inputs followed by the output).
	NumInputs int

	// Pattern is the operator's fusion pattern.
	Pattern PatternKind

	// Rel is the operator's type relation.
	Rel rel.Func
}

var (
	muOps     sync.Mutex
	opsByName = make(map[string]Op)
)

// Register adds an operator to the table. It fails on empty names, missing
// relations and duplicate registrations.
func Register(op Op) error {
	if op.Name == "" {
		return errors.New("cannot register operator with empty name")
	}
	if op.Rel == nil {
		return errors.Errorf("operator %q registered without a type relation", op.Name)
	}
	muOps.Lock()
	defer muOps.Unlock()
	if _, found := opsByName[op.Name]; found {
		return errors.Errorf("operator %q registered twice", op.Name)
	}
	opsByName[op.Name] = op
	return nil
}

// Get returns the operator registered under name.
func Get(name string) (Op, bool) {
	muOps.Lock()
	defer muOps.Unlock()
	op, ok := opsByName[name]
	return op, ok
}
