package ops

import (
	"github.com/janpfeifer/must"

	"github.com/gomlx/opir/rel"
)

// The standard elementwise operators. Binary arithmetic and comparison
// operators broadcast their inputs; unary operators pass the input type
// through unchanged.
func init() {
	for _, name := range []string{"add", "subtract", "multiply", "divide", "maximum", "minimum", "power"} {
		must.M(Register(Op{Name: name, NumInputs: 2, Pattern: Broadcast, Rel: rel.BroadcastRel}))
	}
	for _, name := range []string{"equal", "not_equal", "less", "less_equal", "greater", "greater_equal"} {
		must.M(Register(Op{Name: name, NumInputs: 2, Pattern: Broadcast, Rel: rel.BroadcastCompRel}))
	}
	for _, name := range []string{"copy", "negative", "exp", "log", "sqrt"} {
		must.M(Register(Op{Name: name, NumInputs: 1, Pattern: ElemWise, Rel: rel.IdentityRel}))
	}
}
