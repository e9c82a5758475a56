// Package bridge exposes the strategy operations as named entry points
// taking positional arguments, so they stay invocable from a foreign-function
// layer that only traffics in opaque values.
//
// Entry points are registered at module initialization (single-threaded) and
// only called afterwards.
package bridge

import (
	"sync"

	"github.com/pkg/errors"
)

// Func is a bridged callable: positional arguments in, one result out.
type Func func(args ...any) (any, error)

var (
	mu       sync.RWMutex
	registry = make(map[string]Func)
)

// Register adds a named entry point. Registering the same name twice
// overwrites, matching last-registration-wins semantics of the foreign layer.
func Register(name string, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = fn
}

// Get returns the entry point registered under name.
func Get(name string) (Func, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

// Call invokes the entry point registered under name.
func Call(name string, args ...any) (any, error) {
	fn, ok := Get(name)
	if !ok {
		return nil, errors.Errorf("no bridged function registered under %q", name)
	}
	return fn(args...)
}

// argAt type-asserts positional argument i.
func argAt[T any](name string, args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, errors.Errorf("%s: missing argument %d", name, i)
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, errors.Errorf("%s: argument %d is %T, want %T", name, i, args[i], zero)
	}
	return v, nil
}
