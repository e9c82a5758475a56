package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlx/opir"
	"github.com/gomlx/opir/dtypes"
	"github.com/gomlx/opir/strategy"
	"github.com/gomlx/opir/types"
)

func TestCall_Unknown(t *testing.T) {
	_, err := Call("opir.NoSuchFunction")
	require.ErrorContains(t, err, "no bridged function")
}

func TestStrategyRoundTrip(t *testing.T) {
	got, err := Call("opir.OpStrategy")
	require.NoError(t, err)
	s, ok := got.(*strategy.Strategy)
	require.True(t, ok)

	fcompute := strategy.FCompute(func(attrs opir.Attributes, inputs []opir.Tensor, outType types.Type) ([]opir.Tensor, error) {
		return []opir.Tensor{"computed"}, nil
	})
	fschedule := strategy.FSchedule(func(attrs opir.Attributes, outs []opir.Tensor, target strategy.Target) (opir.Schedule, error) {
		return "scheduled", nil
	})

	_, err = Call("opir.OpStrategyAddImplement", s, strategy.Generic(), fcompute, fschedule, 10)
	require.NoError(t, err)
	require.Len(t, s.Specializations(), 1)

	imp := s.Select(strategy.NewTarget("cpu"))
	require.NotNil(t, imp)

	outs, err := Call("opir.OpImplementCompute", imp, nil,
		[]opir.Tensor{}, types.Type(types.Make(dtypes.Float32, 2)))
	require.NoError(t, err)
	require.Equal(t, []opir.Tensor{"computed"}, outs)

	sched, err := Call("opir.OpImplementSchedule", imp, nil,
		[]opir.Tensor{}, strategy.NewTarget("cpu"))
	require.NoError(t, err)
	require.Equal(t, "scheduled", sched)
}

func TestArgumentErrors(t *testing.T) {
	_, err := Call("opir.OpStrategyAddImplement", "not a strategy")
	require.ErrorContains(t, err, "argument 0")

	s, _ := Call("opir.OpStrategy")
	_, err = Call("opir.OpStrategyAddImplement", s)
	require.ErrorContains(t, err, "missing argument 1")
}
