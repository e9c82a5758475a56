// Package rel implements the TypeRelation contract used for operator
// shape/dtype inference, and the broadcast shape algorithm.
//
// A type relation is a pure function over the types of an operator node
// (inputs followed by outputs). It either verifies/assigns its output slots,
// or reports that it cannot resolve them yet. The checker's propagation loop
// retries deferred relations until fixpoint.
//
// Failures travel on two distinct channels:
//
//   - Deferred: the relation returns (Deferred, nil), meaning "insufficient
//     information now". Not an error; the caller retries later.
//   - Fatal: the relation returns a non-nil error, meaning the types are
//     definitively incompatible (e.g. mismatched dtypes). No retry.
package rel

import (
	"github.com/pkg/errors"

	"github.com/gomlx/opir"
	"github.com/gomlx/opir/exprs"
	"github.com/gomlx/opir/types"
)

// Resolution is the non-fatal half of a relation's result.
type Resolution int

const (
	// Deferred means the relation could not resolve its slots with the
	// information currently available. Retryable.
	Deferred Resolution = iota

	// Resolved means all slots were assigned or verified consistently.
	Resolved
)

// String implements fmt.Stringer.
func (r Resolution) String() string {
	switch r {
	case Deferred:
		return "Deferred"
	case Resolved:
		return "Resolved"
	}
	return "Resolution(?)"
}

// Func is a type relation: list[0:numInputs] are the (possibly partially
// resolved) inputs, list[numInputs:] the outputs to determine. Assignments
// go through the reporter; attrs is the operator's opaque attribute record.
//
// A non-nil error aborts inference (fatal channel); (Deferred, nil) asks the
// caller to retry once more of the graph is resolved.
type Func func(list []types.Type, numInputs int, attrs opir.Attributes, reporter Reporter) (Resolution, error)

// Reporter is the unification sink of a relation invocation: Assign records
// that type slot `slot` must equal `t`.
type Reporter interface {
	// Assign records slot := t. Assigning to an already-resolved slot must be
	// consistent with its current value, otherwise a fatal error is returned.
	// Assigning an unresolved value is a no-op (it carries no information).
	Assign(slot int, t types.Type) error
}

// Unifier is the Reporter used by the solver: it accumulates assignments
// into the invocation's type list and tracks whether anything changed.
//
// A Unifier is only valid for a single relation invocation; it carries no
// state across invocations.
type Unifier struct {
	slots   []types.Type
	changed bool
}

var _ Reporter = (*Unifier)(nil)

// NewUnifier creates a Unifier assigning into the given slice (in place).
func NewUnifier(slots []types.Type) *Unifier {
	return &Unifier{slots: slots}
}

// Assign implements Reporter.
func (u *Unifier) Assign(slot int, t types.Type) error {
	if slot < 0 || slot >= len(u.slots) {
		return errors.Errorf("type slot %d out of range (have %d slots)", slot, len(u.slots))
	}
	if !types.IsResolved(t) {
		return nil
	}
	current := u.slots[slot]
	if !types.IsResolved(current) {
		u.slots[slot] = t
		u.changed = true
		return nil
	}
	if !typesMatch(current, t) {
		return errors.Errorf("conflicting assignment to type slot %d: already %s, now %s",
			slot, current, t)
	}
	return nil
}

// Changed returns whether any Assign call updated a slot.
func (u *Unifier) Changed() bool { return u.changed }

// Types returns the (shared) slot slice the Unifier assigns into.
func (u *Unifier) Types() []types.Type { return u.slots }

// typesMatch is structural type equality with symbolic dimensions decided by
// EqualCheck, so that e.g. shapes [n+1] and [1+n] unify.
func typesMatch(a, b types.Type) bool {
	at, aOk := types.AsTensor(a)
	bt, bOk := types.AsTensor(b)
	if aOk && bOk {
		if at.DType != bt.DType || at.Rank() != bt.Rank() {
			return false
		}
		for i, dim := range at.Shape {
			if !EqualCheck(dim, bt.Shape[i]) {
				return false
			}
		}
		return true
	}
	aTuple, aOk := a.(types.TupleType)
	bTuple, bOk := b.(types.TupleType)
	if aOk && bOk {
		if len(aTuple.Fields) != len(bTuple.Fields) {
			return false
		}
		for i, field := range aTuple.Fields {
			if !typesMatch(field, bTuple.Fields[i]) {
				return false
			}
		}
		return true
	}
	return types.Equal(a, b)
}

// IdentityRel verifies/propagates that all listed types are equal to the
// first. Used for pass-through operators.
func IdentityRel(list []types.Type, numInputs int, attrs opir.Attributes, reporter Reporter) (Resolution, error) {
	for i := 1; i < len(list); i++ {
		if err := reporter.Assign(i, list[0]); err != nil {
			return Deferred, err
		}
	}
	return Resolved, nil
}

// EqualCheck decides whether two index expressions are provably equal: first
// by structural equality, then by checking whether their difference is the
// constant 0, if needed after canonical simplification. Undecided expressions
// are conservatively treated as not equal, which may cause spurious broadcast
// errors on unsimplified symbolic shapes.
func EqualCheck(lhs, rhs exprs.Expr) bool {
	if exprs.Equal(lhs, rhs) {
		return true
	}
	diff := exprs.Sub(lhs, rhs)
	if v, ok := exprs.AsConstInt(diff); ok {
		return v == 0
	}
	if v, ok := exprs.AsConstInt(exprs.CanonicalSimplify(diff)); ok {
		return v == 0
	}
	return false
}

// EqualConstInt returns true iff e is a concrete integer literal equal to
// value.
func EqualConstInt(e exprs.Expr, value int64) bool {
	if v, ok := exprs.AsConstInt(e); ok {
		return v == value
	}
	return false
}
