// Package types defines the Type variant set seen by type relations.
//
// The only variant relations inspect is TensorType: a dtype plus an ordered
// sequence of dimension expressions. TupleType groups types and
// IncompleteType is the placeholder a checker uses for not-yet-inferred
// slots. Types are immutable once constructed.
package types

import (
	"fmt"
	"strings"

	"github.com/gomlx/opir/dtypes"
	"github.com/gomlx/opir/exprs"
)

// Type is a value of the closed type variant set.
type Type interface {
	fmt.Stringer

	typeNode()
}

// TensorType is a tensor: a dtype and a shape of dimension expressions.
// A rank-0 (empty shape) tensor is a scalar.
type TensorType struct {
	DType dtypes.DType
	Shape []exprs.Expr
}

// TupleType is an ordered group of types.
type TupleType struct {
	Fields []Type
}

// IncompleteType is a placeholder for a type slot that has not been resolved
// yet. The id distinguishes unrelated placeholders.
type IncompleteType struct {
	ID int
}

func (TensorType) typeNode()     {}
func (TupleType) typeNode()      {}
func (IncompleteType) typeNode() {}

// Make builds a TensorType with concrete dimensions.
func Make(dtype dtypes.DType, dimensions ...int64) TensorType {
	shape := make([]exprs.Expr, len(dimensions))
	for i, dim := range dimensions {
		shape[i] = exprs.Const(dim)
	}
	return TensorType{DType: dtype, Shape: shape}
}

// MakeSymbolic builds a TensorType from arbitrary dimension expressions.
func MakeSymbolic(dtype dtypes.DType, dims ...exprs.Expr) TensorType {
	return TensorType{DType: dtype, Shape: dims}
}

// Rank is the number of dimensions. Scalars have rank 0.
func (t TensorType) Rank() int { return len(t.Shape) }

// IsScalar returns whether the tensor has rank 0.
func (t TensorType) IsScalar() bool { return t.Rank() == 0 }

// Ok returns whether the tensor type is valid (has a dtype set).
func (t TensorType) Ok() bool { return t.DType != dtypes.InvalidDType }

// String implements fmt.Stringer, e.g. "(Float32)[8 1 6]".
func (t TensorType) String() string {
	if t.Rank() == 0 {
		return fmt.Sprintf("(%s)[]", t.DType)
	}
	dims := make([]string, len(t.Shape))
	for i, dim := range t.Shape {
		dims[i] = dim.String()
	}
	return fmt.Sprintf("(%s)[%s]", t.DType, strings.Join(dims, " "))
}

func (t TupleType) String() string {
	parts := make([]string, len(t.Fields))
	for i, field := range t.Fields {
		parts[i] = field.String()
	}
	return fmt.Sprintf("Tuple<%s>", strings.Join(parts, ", "))
}

func (t IncompleteType) String() string {
	return fmt.Sprintf("IncompleteType(#%d)", t.ID)
}

// AsTensor is the safe try-cast to TensorType: it returns the zero
// TensorType and false instead of panicking when t is any other variant
// (or nil).
func AsTensor(t Type) (TensorType, bool) {
	tt, ok := t.(TensorType)
	return tt, ok
}

// IsResolved returns whether t carries complete information: not nil, not an
// IncompleteType, and for tuples all fields resolved.
func IsResolved(t Type) bool {
	switch v := t.(type) {
	case nil:
		return false
	case IncompleteType:
		return false
	case TupleType:
		for _, field := range v.Fields {
			if !IsResolved(field) {
				return false
			}
		}
		return true
	}
	return true
}

// Equal reports structural equality of two types. Dimensions are compared
// structurally; symbolically equal but structurally different dimensions
// compare false here (the rel package layers the simplifier on top).
func Equal(a, b Type) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case TensorType:
		bv, ok := b.(TensorType)
		if !ok || av.DType != bv.DType || av.Rank() != bv.Rank() {
			return false
		}
		for i, dim := range av.Shape {
			if !exprs.Equal(dim, bv.Shape[i]) {
				return false
			}
		}
		return true
	case TupleType:
		bv, ok := b.(TupleType)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i, field := range av.Fields {
			if !Equal(field, bv.Fields[i]) {
				return false
			}
		}
		return true
	case IncompleteType:
		bv, ok := b.(IncompleteType)
		return ok && av.ID == bv.ID
	}
	return false
}
