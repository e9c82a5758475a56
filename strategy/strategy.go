// Package strategy implements operator strategies: per-operator registries of
// condition-guarded, priority-ranked compute+schedule implementations, used
// to select how an operator is lowered for a given target.
//
// Lifecycle: one Strategy exists per registered operator per target kind. It
// is created and appended to during module initialization (single-threaded,
// strictly ordered -- concurrent mutation is out of contract) and only read
// afterwards, so compilation threads may query it concurrently without
// synchronization.
package strategy

import (
	"github.com/gomlx/opir"
	"github.com/gomlx/opir/types"
)

// FCompute is an injected compute-description function: given the operator's
// attributes, its input compute descriptions and the inferred output type,
// it returns the output compute descriptions.
type FCompute func(attrs opir.Attributes, inputs []opir.Tensor, outType types.Type) ([]opir.Tensor, error)

// FSchedule is an injected schedule-description function: given the
// operator's attributes, its output compute descriptions and the build
// target, it returns the computation schedule.
type FSchedule func(attrs opir.Attributes, outs []opir.Tensor, target Target) (opir.Schedule, error)

// Implementation pairs a compute function with a schedule function and a
// priority level. Immutable after construction.
type Implementation struct {
	fcompute  FCompute
	fschedule FSchedule
	plevel    int
}

// NewImplementation creates an Implementation. Higher plevel wins at
// selection time.
func NewImplementation(fcompute FCompute, fschedule FSchedule, plevel int) *Implementation {
	return &Implementation{fcompute: fcompute, fschedule: fschedule, plevel: plevel}
}

// PLevel returns the implementation's priority level.
func (imp *Implementation) PLevel() int { return imp.plevel }

// Compute invokes the stored compute function. Pure: no side effects on the
// strategy objects.
func (imp *Implementation) Compute(attrs opir.Attributes, inputs []opir.Tensor, outType types.Type) ([]opir.Tensor, error) {
	return imp.fcompute(attrs, inputs, outType)
}

// Schedule invokes the stored schedule function.
func (imp *Implementation) Schedule(attrs opir.Attributes, outs []opir.Tensor, target Target) (opir.Schedule, error) {
	return imp.fschedule(attrs, outs, target)
}

// Specialization is a group of implementations guarded by one condition.
// Implementations are kept in registration order, not sorted by priority:
// priority resolution happens at query time.
type Specialization struct {
	condition  Condition
	implements []*Implementation
}

// Condition returns the condition guarding this specialization.
func (s *Specialization) Condition() Condition { return s.condition }

// Implements returns the implementations, in registration order.
func (s *Specialization) Implements() []*Implementation { return s.implements }

// AddImplement appends a new implementation to this specialization.
func (s *Specialization) AddImplement(fcompute FCompute, fschedule FSchedule, plevel int) {
	s.implements = append(s.implements, NewImplementation(fcompute, fschedule, plevel))
}

// Strategy is the per-operator registry of specializations. Conditions of
// its specializations are pairwise distinct: AddImplement does a
// find-or-create lookup by condition value.
type Strategy struct {
	specializations []*Specialization
}

// New creates an empty strategy.
func New() *Strategy { return &Strategy{} }

// Specializations returns the strategy's specializations, in creation order.
func (s *Strategy) Specializations() []*Specialization { return s.specializations }

// AddImplement registers an implementation under the given specialization
// condition: it finds the specialization with an equal condition, creating
// it if needed, and appends there. The lookup is linear, which is fine since
// registration happens a small, bounded number of times per operator at
// process-init time.
func (s *Strategy) AddImplement(cond Condition, fcompute FCompute, fschedule FSchedule, plevel int) {
	for _, spec := range s.specializations {
		if spec.condition.Equal(cond) {
			spec.AddImplement(fcompute, fschedule, plevel)
			return
		}
	}
	spec := &Specialization{condition: cond}
	spec.AddImplement(fcompute, fschedule, plevel)
	s.specializations = append(s.specializations, spec)
}

// Select returns the best implementation for the given target: among the
// implementations of all specializations whose condition matches the target,
// the one with the highest plevel wins, ties broken by registration order
// (first registered wins). Returns nil when no specialization matches.
func (s *Strategy) Select(target Target) *Implementation {
	var best *Implementation
	for _, spec := range s.specializations {
		if !spec.condition.Matches(target) {
			continue
		}
		for _, imp := range spec.implements {
			if best == nil || imp.plevel > best.plevel {
				best = imp
			}
		}
	}
	return best
}
