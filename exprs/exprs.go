// Package exprs implements the symbolic index expressions used as tensor
// dimensions during type inference.
//
// A dimension is either a concrete non-negative integer (Const), a named
// symbolic length (Sym), an arithmetic combination of those (Binary), or the
// special Any wildcard, meaning "unknown at compile time, determined at run
// time". Expressions are immutable once constructed and freely shareable.
package exprs

import (
	"fmt"
	"strconv"
)

// Expr is a symbolic index expression.
type Expr interface {
	fmt.Stringer

	// isExpr limits implementations to this package: relations dispatch on
	// the closed variant set.
	isExpr()
}

// Const is a concrete integer dimension.
type Const int64

// Sym is a named symbolic dimension, e.g. a batch size only known at graph
// construction time.
type Sym string

// BinaryOp enumerates the arithmetic operators over index expressions.
type BinaryOp int

//go:generate go tool enumer -type=BinaryOp exprs.go

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpFloorDiv
)

// Binary is an arithmetic combination of two index expressions.
type Binary struct {
	Op       BinaryOp
	LHS, RHS Expr
}

type anyDim struct{}

var anySingleton = anyDim{}

// Any returns the wildcard dimension. It is a singleton: all Any dimensions
// compare equal to each other.
func Any() Expr { return anySingleton }

// IsAny returns whether e is the Any wildcard.
func IsAny(e Expr) bool {
	_, ok := e.(anyDim)
	return ok
}

func (Const) isExpr()  {}
func (Sym) isExpr()    {}
func (Binary) isExpr() {}
func (anyDim) isExpr() {}

func (c Const) String() string { return strconv.FormatInt(int64(c), 10) }
func (s Sym) String() string   { return string(s) }
func (anyDim) String() string  { return "?" }

func (b Binary) String() string {
	var op string
	switch b.Op {
	case OpAdd:
		op = "+"
	case OpSub:
		op = "-"
	case OpMul:
		op = "*"
	case OpFloorDiv:
		op = "/"
	default:
		op = "?op?"
	}
	return fmt.Sprintf("(%s%s%s)", b.LHS, op, b.RHS)
}

// Add returns a+b.
func Add(a, b Expr) Expr { return Binary{Op: OpAdd, LHS: a, RHS: b} }

// Sub returns a-b.
func Sub(a, b Expr) Expr { return Binary{Op: OpSub, LHS: a, RHS: b} }

// Mul returns a*b.
func Mul(a, b Expr) Expr { return Binary{Op: OpMul, LHS: a, RHS: b} }

// FloorDiv returns a/b rounded towards negative infinity.
func FloorDiv(a, b Expr) Expr { return Binary{Op: OpFloorDiv, LHS: a, RHS: b} }

// AsConstInt extracts the value of a concrete integer literal. It does not
// attempt any simplification: callers wanting to decide symbolic expressions
// should run CanonicalSimplify first.
func AsConstInt(e Expr) (int64, bool) {
	c, ok := e.(Const)
	return int64(c), ok
}

// Equal reports structural equality of two expressions. Symbolically equal
// but structurally different expressions (e.g. n+1 vs 1+n) compare false
// here; use CanonicalSimplify on the difference to decide those.
func Equal(a, b Expr) bool {
	switch av := a.(type) {
	case Const:
		bv, ok := b.(Const)
		return ok && av == bv
	case Sym:
		bv, ok := b.(Sym)
		return ok && av == bv
	case anyDim:
		return IsAny(b)
	case Binary:
		bv, ok := b.(Binary)
		return ok && av.Op == bv.Op && Equal(av.LHS, bv.LHS) && Equal(av.RHS, bv.RHS)
	}
	return false
}
