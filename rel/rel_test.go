package rel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlx/opir/dtypes"
	"github.com/gomlx/opir/exprs"
	"github.com/gomlx/opir/types"
)

func TestIdentityRel(t *testing.T) {
	list := []types.Type{
		types.Make(dtypes.Float32, 2, 3),
		types.IncompleteType{ID: 1},
		types.IncompleteType{ID: 2},
	}
	u := NewUnifier(list)
	res, err := IdentityRel(list, 1, nil, u)
	require.NoError(t, err)
	require.Equal(t, Resolved, res)
	for _, got := range u.Types() {
		require.True(t, types.Equal(list[0], got))
	}
	require.True(t, u.Changed())
}

func TestIdentityRel_ConflictIsFatal(t *testing.T) {
	list := []types.Type{
		types.Make(dtypes.Float32, 2, 3),
		types.Make(dtypes.Float32, 7),
	}
	_, err := IdentityRel(list, 1, nil, NewUnifier(list))
	require.ErrorContains(t, err, "conflicting assignment")
}

func TestEqualCheck(t *testing.T) {
	for _, x := range []exprs.Expr{
		exprs.Const(4),
		exprs.Sym("n"),
		exprs.Add(exprs.Sym("n"), exprs.Const(1)),
		exprs.Any(),
	} {
		require.True(t, EqualCheck(x, x), "EqualCheck(%s, %s)", x, x)
	}

	a := exprs.Add(exprs.Sym("n"), exprs.Const(1))
	b := exprs.Add(exprs.Const(1), exprs.Sym("n"))
	require.True(t, EqualCheck(a, b))
	require.Equal(t, EqualCheck(a, b), EqualCheck(b, a))

	c := exprs.Sym("m")
	require.False(t, EqualCheck(a, c))
	require.Equal(t, EqualCheck(a, c), EqualCheck(c, a))

	require.False(t, EqualCheck(exprs.Const(3), exprs.Const(4)))
	require.False(t, EqualCheck(exprs.Any(), exprs.Const(1)))
}

func TestEqualConstInt(t *testing.T) {
	require.True(t, EqualConstInt(exprs.Const(1), 1))
	require.False(t, EqualConstInt(exprs.Const(2), 1))
	require.False(t, EqualConstInt(exprs.Sym("n"), 1))
	require.False(t, EqualConstInt(exprs.Any(), 1))
}

func TestUnifier(t *testing.T) {
	list := []types.Type{nil, nil}
	u := NewUnifier(list)
	require.False(t, u.Changed())

	// Unresolved values carry no information.
	require.NoError(t, u.Assign(0, types.IncompleteType{ID: 7}))
	require.False(t, u.Changed())

	require.NoError(t, u.Assign(0, types.Make(dtypes.Float32, 2)))
	require.True(t, u.Changed())

	// Re-assigning a consistent value is fine, also when only symbolically
	// equal.
	require.NoError(t, u.Assign(0, types.Make(dtypes.Float32, 2)))
	require.NoError(t, u.Assign(1, types.MakeSymbolic(dtypes.Int32,
		exprs.Add(exprs.Sym("n"), exprs.Const(1)))))
	require.NoError(t, u.Assign(1, types.MakeSymbolic(dtypes.Int32,
		exprs.Add(exprs.Const(1), exprs.Sym("n")))))

	// Inconsistent re-assignment is fatal.
	require.ErrorContains(t, u.Assign(0, types.Make(dtypes.Float32, 3)),
		"conflicting assignment")
	require.ErrorContains(t, u.Assign(2, types.Make(dtypes.Bool)), "out of range")
}
