package strategy

import (
	"fmt"
	"slices"
	"strings"
)

// Target describes the backend an operator is being compiled for: a kind
// (e.g. "cpu", "cuda") plus the set of hardware features it supports.
type Target struct {
	Kind     string
	Features map[string]bool
}

// NewTarget creates a Target of the given kind with the given features.
func NewTarget(kind string, features ...string) Target {
	t := Target{Kind: kind, Features: make(map[string]bool, len(features))}
	for _, feature := range features {
		t.Features[feature] = true
	}
	return t
}

// HasFeature returns whether the target supports the given feature.
func (t Target) HasFeature(feature string) bool {
	return t.Features[feature]
}

// String implements fmt.Stringer.
func (t Target) String() string {
	if len(t.Features) == 0 {
		return t.Kind
	}
	features := make([]string, 0, len(t.Features))
	for feature := range t.Features {
		features = append(features, feature)
	}
	slices.Sort(features)
	return fmt.Sprintf("%s[%s]", t.Kind, strings.Join(features, ","))
}

// Condition guards a group of operator implementations: only when the
// condition matches the current target are those implementations considered.
//
// A Condition is plain data, so two conditions can be compared by value --
// that is how Strategy.AddImplement finds the specialization to append to.
// The zero value is the generic condition, which matches every target.
type Condition struct {
	// TargetKind restricts the condition to targets of this kind. Empty
	// matches any kind.
	TargetKind string

	// Features the target must all support. Kept sorted and deduplicated so
	// that equality is canonical.
	Features []string
}

// Generic returns the always-true condition.
func Generic() Condition { return Condition{} }

// NewCondition creates a condition requiring the given target kind (empty
// for any) and features.
func NewCondition(targetKind string, features ...string) Condition {
	features = slices.Clone(features)
	slices.Sort(features)
	return Condition{TargetKind: targetKind, Features: slices.Compact(features)}
}

// IsGeneric returns whether the condition matches every target.
func (c Condition) IsGeneric() bool {
	return c.TargetKind == "" && len(c.Features) == 0
}

// Equal reports value equality of two conditions.
func (c Condition) Equal(o Condition) bool {
	return c.TargetKind == o.TargetKind && slices.Equal(c.Features, o.Features)
}

// Matches returns whether the condition is active for the given target.
func (c Condition) Matches(target Target) bool {
	if c.TargetKind != "" && c.TargetKind != target.Kind {
		return false
	}
	for _, feature := range c.Features {
		if !target.HasFeature(feature) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (c Condition) String() string {
	if c.IsGeneric() {
		return "generic"
	}
	kind := c.TargetKind
	if kind == "" {
		kind = "*"
	}
	if len(c.Features) == 0 {
		return kind
	}
	return fmt.Sprintf("%s[%s]", kind, strings.Join(c.Features, ","))
}
