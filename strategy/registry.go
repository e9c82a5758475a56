package strategy

import "sync"

type strategyKey struct {
	op         string
	targetKind string
}

// The process-wide strategy table: one Strategy per operator/target-kind
// pair. Populated during module initialization; the mutex only guards the
// map itself, Strategy objects are not protected and must not be mutated
// after initialization.
var (
	muStrategies sync.Mutex
	strategies   = make(map[strategyKey]*Strategy)
)

// ForOp returns the strategy registered for the operator under the given
// target kind, creating an empty one on first use. Use targetKind "" for the
// target-independent (generic) strategy.
func ForOp(op, targetKind string) *Strategy {
	muStrategies.Lock()
	defer muStrategies.Unlock()
	key := strategyKey{op: op, targetKind: targetKind}
	s, ok := strategies[key]
	if !ok {
		s = New()
		strategies[key] = s
	}
	return s
}

// Lookup returns the strategy to use for the operator on the given target:
// the strategy registered for the target's kind if there is one, otherwise
// the target-independent strategy. The second result reports whether any
// strategy was found.
func Lookup(op string, target Target) (*Strategy, bool) {
	muStrategies.Lock()
	defer muStrategies.Unlock()
	if s, ok := strategies[strategyKey{op: op, targetKind: target.Kind}]; ok {
		return s, true
	}
	s, ok := strategies[strategyKey{op: op, targetKind: ""}]
	return s, ok
}
