package rel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlx/opir/dtypes"
	"github.com/gomlx/opir/exprs"
	"github.com/gomlx/opir/types"
)

func TestConcreteBroadcast(t *testing.T) {
	testCases := []struct {
		name    string
		shape1  []int64
		shape2  []int64
		want    []int64
		wantErr bool
	}{
		{name: "classic numpy example", shape1: []int64{8, 1, 6, 1}, shape2: []int64{7, 1, 5},
			want: []int64{8, 7, 6, 5}},
		{name: "trailing alignment", shape1: []int64{5, 4}, shape2: []int64{4},
			want: []int64{5, 4}},
		{name: "scalar", shape1: []int64{3}, shape2: []int64{},
			want: []int64{3}},
		{name: "both scalar", shape1: []int64{}, shape2: []int64{},
			want: []int64{}},
		{name: "equal", shape1: []int64{2, 3}, shape2: []int64{2, 3},
			want: []int64{2, 3}},
		{name: "incompatible", shape1: []int64{3, 4}, shape2: []int64{5, 4},
			wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t1 := types.Make(dtypes.Float32, tc.shape1...)
			t2 := types.Make(dtypes.Float32, tc.shape2...)
			got, err := ConcreteBroadcast(t1, t2, dtypes.Float32)
			if tc.wantErr {
				require.ErrorContains(t, err, "incompatible broadcast type")
				require.ErrorContains(t, err, t1.String())
				require.ErrorContains(t, err, t2.String())
				return
			}
			require.NoError(t, err)
			require.True(t, types.Equal(types.Make(dtypes.Float32, tc.want...), got),
				"got %s", got)

			// Broadcasting is commutative over the shapes.
			swapped, err := ConcreteBroadcast(t2, t1, dtypes.Float32)
			require.NoError(t, err)
			require.True(t, types.Equal(got, swapped))
		})
	}
}

func TestConcreteBroadcast_Symbolic(t *testing.T) {
	n := exprs.Sym("n")
	t1 := types.MakeSymbolic(dtypes.Float32, n, exprs.Const(1))
	t2 := types.MakeSymbolic(dtypes.Float32, exprs.Add(n, exprs.Const(0)), exprs.Const(4))
	got, err := ConcreteBroadcast(t1, t2, dtypes.Float32)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rank())
	require.True(t, EqualCheck(n, got.Shape[0]))
	require.True(t, EqualCheck(exprs.Const(4), got.Shape[1]))

	// Two distinct symbols are conservatively not equal.
	t3 := types.MakeSymbolic(dtypes.Float32, exprs.Sym("m"))
	_, err = ConcreteBroadcast(t1, t3, dtypes.Float32)
	require.ErrorContains(t, err, "incompatible broadcast type")
}

func TestConcreteBroadcast_AnyWildcard(t *testing.T) {
	t1 := types.MakeSymbolic(dtypes.Float32, exprs.Any(), exprs.Const(3))
	t2 := types.Make(dtypes.Float32, 7, 3)

	// The wildcard is assumed compatible and the other side wins.
	got, err := ConcreteBroadcast(t1, t2, dtypes.Float32)
	require.NoError(t, err)
	require.True(t, types.Equal(types.Make(dtypes.Float32, 7, 3), got), "got %s", got)

	got, err = ConcreteBroadcast(t2, t1, dtypes.Float32)
	require.NoError(t, err)
	require.True(t, types.Equal(types.Make(dtypes.Float32, 7, 3), got), "got %s", got)
}

func TestBroadcastRel(t *testing.T) {
	list := []types.Type{
		types.Make(dtypes.Float32, 5, 4),
		types.Make(dtypes.Float32, 4),
		types.IncompleteType{},
	}
	u := NewUnifier(list)
	res, err := BroadcastRel(list, 2, nil, u)
	require.NoError(t, err)
	require.Equal(t, Resolved, res)
	require.True(t, types.Equal(types.Make(dtypes.Float32, 5, 4), u.Types()[2]))
}

func TestBroadcastRel_DTypeMismatch(t *testing.T) {
	list := []types.Type{
		types.Make(dtypes.Float32, 2),
		types.Make(dtypes.Float64, 2),
		types.IncompleteType{},
	}
	u := NewUnifier(list)
	_, err := BroadcastRel(list, 2, nil, u)
	require.ErrorContains(t, err, "dtype mismatch")

	// No partial assignment.
	_, ok := types.AsTensor(u.Types()[2])
	require.False(t, ok)
}

func TestBroadcastRel_DefersOnUnresolvedInputs(t *testing.T) {
	for _, list := range [][]types.Type{
		{types.IncompleteType{ID: 1}, types.Make(dtypes.Float32, 2), types.IncompleteType{}},
		{types.Make(dtypes.Float32, 2), types.IncompleteType{ID: 1}, types.IncompleteType{}},
		{types.TupleType{}, types.Make(dtypes.Float32, 2), types.IncompleteType{}},
	} {
		u := NewUnifier(list)
		res, err := BroadcastRel(list, 2, nil, u)
		require.NoError(t, err)
		require.Equal(t, Deferred, res)
		require.False(t, u.Changed())
	}
}

func TestBroadcastRel_WrongArity(t *testing.T) {
	list := []types.Type{types.Make(dtypes.Float32, 2), types.IncompleteType{}}
	_, err := BroadcastRel(list, 1, nil, NewUnifier(list))
	require.ErrorContains(t, err, "expects 3 types")
}

func TestBroadcastCompRel(t *testing.T) {
	list := []types.Type{
		types.Make(dtypes.Float32, 2, 3),
		types.Make(dtypes.Float32, 3),
		types.IncompleteType{},
	}
	u := NewUnifier(list)
	res, err := BroadcastCompRel(list, 2, nil, u)
	require.NoError(t, err)
	require.Equal(t, Resolved, res)
	require.True(t, types.Equal(types.Make(dtypes.Bool, 2, 3), u.Types()[2]))
}

func BenchmarkConcreteBroadcast(b *testing.B) {
	t1 := types.Make(dtypes.Float32, 8, 1, 6, 1)
	t2 := types.Make(dtypes.Float32, 7, 1, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := ConcreteBroadcast(t1, t2, dtypes.Float32)
		if err != nil {
			b.Fatal(err)
		}
	}
}
