// Package solver runs type inference to fixpoint: it repeatedly applies the
// type relations of a graph's operator nodes over a shared table of type
// variables until no more information propagates.
//
// Deferred relations (see the rel package) are simply retried on the next
// pass; only relations still unresolved when the fixpoint is reached are
// reported as errors. Fatal relation errors abort immediately.
//
// A Solver is single-threaded: one instance per compilation.
package solver

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"k8s.io/klog/v2"

	"github.com/gomlx/opir"
	"github.com/gomlx/opir/ops"
	"github.com/gomlx/opir/rel"
	"github.com/gomlx/opir/types"
)

// Solver holds a table of type variables and the relation constraints over
// them.
type Solver struct {
	table       []types.Type
	constraints []*constraint
}

type constraint struct {
	op        string
	fn        rel.Func
	slots     []int
	numInputs int
	attrs     opir.Attributes
	resolved  bool
}

// New creates an empty solver.
func New() *Solver { return &Solver{} }

// NewVar adds a type variable initialized to t and returns its index. Pass
// nil for a fully unknown variable.
func (s *Solver) NewVar(t types.Type) int {
	if t == nil {
		t = types.IncompleteType{ID: len(s.table)}
	}
	s.table = append(s.table, t)
	return len(s.table) - 1
}

// Type returns the current value of the type variable v.
func (s *Solver) Type(v int) types.Type { return s.table[v] }

// Types returns the current values of all type variables, in creation order.
func (s *Solver) Types() []types.Type { return s.table }

// AddConstraint adds a relation constraint over the given type variables
// (inputs followed by outputs, numInputs marking the split).
func (s *Solver) AddConstraint(opName string, fn rel.Func, numInputs int, attrs opir.Attributes, vars ...int) error {
	if fn == nil {
		return errors.Errorf("constraint for %q has no relation", opName)
	}
	if numInputs < 0 || numInputs > len(vars) {
		return errors.Errorf("constraint for %q: numInputs=%d out of range for %d type slots",
			opName, numInputs, len(vars))
	}
	for _, v := range vars {
		if v < 0 || v >= len(s.table) {
			return errors.Errorf("constraint for %q references unknown type variable %d", opName, v)
		}
	}
	s.constraints = append(s.constraints, &constraint{
		op:        opName,
		fn:        fn,
		slots:     vars,
		numInputs: numInputs,
		attrs:     attrs,
	})
	return nil
}

// AddOp adds the constraint of a registered operator node: vars are its
// input variables followed by its output variable.
func (s *Solver) AddOp(op ops.Op, attrs opir.Attributes, vars ...int) error {
	if len(vars) != op.NumInputs+1 {
		return errors.Errorf("operator %q takes %d inputs and 1 output, got %d type variables",
			op.Name, op.NumInputs, len(vars))
	}
	return s.AddConstraint(op.Name, op.Rel, op.NumInputs, attrs, vars...)
}

// Solve runs constraint propagation to fixpoint. It is idempotent: solving
// an already resolved graph changes nothing and returns nil.
func (s *Solver) Solve() error {
	for pass := 1; ; pass++ {
		changed := false
		for _, c := range s.constraints {
			if c.resolved {
				continue
			}
			window := make([]types.Type, len(c.slots))
			for i, slot := range c.slots {
				window[i] = s.table[slot]
			}
			unifier := rel.NewUnifier(window)
			res, err := c.fn(window, c.numInputs, c.attrs, unifier)
			if err != nil {
				return errors.Wrapf(err, "type relation for %q", c.op)
			}
			if unifier.Changed() {
				changed = true
				for i, slot := range c.slots {
					s.table[slot] = window[i]
				}
			}
			if res == rel.Resolved && s.slotsResolved(c) {
				c.resolved = true
			}
			klog.V(2).Infof("pass %d: %q -> %s (changed=%v)", pass, c.op, res, unifier.Changed())
		}
		if !changed {
			break
		}
	}

	var err error
	for _, c := range s.constraints {
		if !c.resolved {
			err = multierr.Append(err,
				errors.Errorf("type relation for %q could not be resolved", c.op))
		}
	}
	return err
}

func (s *Solver) slotsResolved(c *constraint) bool {
	for _, slot := range c.slots {
		if !types.IsResolved(s.table[slot]) {
			return false
		}
	}
	return true
}
