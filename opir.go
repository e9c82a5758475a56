// Package opir implements operator type-inference and strategy dispatch for a
// tensor-program compiler IR.
//
// It answers two questions during graph compilation:
//
//  1. Given an operator's input types, what is its output type (shape and
//     dtype)? See the rel package: type relations are pure functions invoked
//     by the checker's propagation loop, and may report "not resolvable yet"
//     so the checker can retry once more of the graph is known.
//  2. Given an operator, its attributes and a target, which concrete
//     compute+schedule implementation should execute it? See the strategy
//     package: each operator carries a set of condition-guarded
//     specializations, each holding priority-ranked implementations.
//
// Sub-packages:
//
//   - dtypes: the element type (DType) enum used by tensor types.
//   - exprs: symbolic dimension expressions, with a canonical simplifier used
//     to prove dimension equality.
//   - types: the Type variant set (TensorType, TupleType, IncompleteType).
//   - rel: the TypeRelation contract and the broadcast shape algorithm.
//   - strategy: OpImplement / OpSpecialization / OpStrategy and the
//     per-operator/target strategy registry.
//   - ops: the operator table binding names to relations and fusion patterns.
//   - solver: fixpoint propagation of type relations over a small graph.
//   - bridge: named entry points for foreign callers.
//
// This package only declares the opaque value types shared by the
// sub-packages: attribute records and the tensor/schedule descriptions
// produced by injected compute and schedule functions. opir never inspects
// them, it only passes them through.
package opir

// Attributes is the opaque attribute record of an operator node. It is
// carried through type relations and compute/schedule functions unchanged;
// only the functions injected by the operator's implementation interpret it.
type Attributes = any

// Tensor is an opaque compute description (a placeholder or the result of a
// compute function). Constructed and consumed only by injected compute
// functions.
type Tensor = any

// Schedule is an opaque schedule description returned by injected schedule
// functions.
type Schedule = any
