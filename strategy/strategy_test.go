package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlx/opir"
	"github.com/gomlx/opir/dtypes"
	"github.com/gomlx/opir/types"
)

// namedCompute builds an FCompute that returns its own name, so tests can
// tell which implementation was selected.
func namedCompute(name string) FCompute {
	return func(attrs opir.Attributes, inputs []opir.Tensor, outType types.Type) ([]opir.Tensor, error) {
		return []opir.Tensor{name}, nil
	}
}

func namedSchedule(name string) FSchedule {
	return func(attrs opir.Attributes, outs []opir.Tensor, target Target) (opir.Schedule, error) {
		return name, nil
	}
}

func selectedName(t *testing.T, imp *Implementation) string {
	t.Helper()
	require.NotNil(t, imp)
	outs, err := imp.Compute(nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, outs, 1)
	return outs[0].(string)
}

func TestAddImplement_GroupsByCondition(t *testing.T) {
	s := New()
	avx := NewCondition("cpu", "avx512")

	s.AddImplement(avx, namedCompute("a"), namedSchedule("a"), 10)
	s.AddImplement(avx, namedCompute("b"), namedSchedule("b"), 11)
	require.Len(t, s.Specializations(), 1)
	require.Len(t, s.Specializations()[0].Implements(), 2)

	s.AddImplement(Generic(), namedCompute("c"), namedSchedule("c"), 10)
	require.Len(t, s.Specializations(), 2)
	require.True(t, s.Specializations()[1].Condition().IsGeneric())
}

func TestCondition(t *testing.T) {
	require.True(t, Generic().Matches(NewTarget("cpu")))
	require.True(t, Generic().Matches(NewTarget("cuda", "tensorcores")))

	avx := NewCondition("cpu", "avx512")
	require.True(t, avx.Matches(NewTarget("cpu", "avx512", "fma")))
	require.False(t, avx.Matches(NewTarget("cpu")))
	require.False(t, avx.Matches(NewTarget("cuda", "avx512")))

	// Feature order does not matter for equality.
	require.True(t, NewCondition("cpu", "a", "b").Equal(NewCondition("cpu", "b", "a")))
	require.False(t, NewCondition("cpu", "a").Equal(NewCondition("cpu", "b")))

	require.Equal(t, "generic", Generic().String())
	require.Equal(t, "cpu[avx512]", avx.String())
}

func TestSelect_ByConditionAndPLevel(t *testing.T) {
	s := New()
	condA := NewCondition("cpu", "avx512")
	condB := NewCondition("cuda")
	s.AddImplement(condA, namedCompute("cpu-avx512"), namedSchedule("cpu-avx512"), 5)
	s.AddImplement(condB, namedCompute("cuda"), namedSchedule("cuda"), 10)

	imp := s.Select(NewTarget("cpu", "avx512"))
	require.Equal(t, "cpu-avx512", selectedName(t, imp))
	require.Equal(t, 5, imp.PLevel())

	imp = s.Select(NewTarget("cuda"))
	require.Equal(t, "cuda", selectedName(t, imp))

	// No matching condition: no result.
	require.Nil(t, s.Select(NewTarget("cpu")))

	// ... unless a generic fallback is registered.
	s.AddImplement(Generic(), namedCompute("fallback"), namedSchedule("fallback"), 1)
	require.Equal(t, "fallback", selectedName(t, s.Select(NewTarget("cpu"))))

	// A higher-plevel active specialization still wins over the generic one.
	require.Equal(t, "cuda", selectedName(t, s.Select(NewTarget("cuda"))))
}

func TestSelect_TieBrokenByRegistrationOrder(t *testing.T) {
	s := New()
	s.AddImplement(Generic(), namedCompute("first"), namedSchedule("first"), 10)
	s.AddImplement(Generic(), namedCompute("second"), namedSchedule("second"), 10)
	require.Equal(t, "first", selectedName(t, s.Select(NewTarget("cpu"))))
}

func TestImplementation_Schedule(t *testing.T) {
	imp := NewImplementation(namedCompute("x"), namedSchedule("sched-x"), 10)
	sched, err := imp.Schedule(nil, nil, NewTarget("cpu"))
	require.NoError(t, err)
	require.Equal(t, "sched-x", sched.(string))
}

func TestRegistry(t *testing.T) {
	s1 := ForOp("test.add", "cpu")
	require.Same(t, s1, ForOp("test.add", "cpu"))
	require.NotSame(t, s1, ForOp("test.add", "cuda"))
	require.NotSame(t, s1, ForOp("test.mul", "cpu"))

	s1.AddImplement(Generic(), namedCompute("cpu"), namedSchedule("cpu"), 10)

	got, ok := Lookup("test.add", NewTarget("cpu"))
	require.True(t, ok)
	require.Same(t, s1, got)

	// Unknown target kind falls back to the target-independent strategy.
	_, ok = Lookup("test.add", NewTarget("tpu"))
	require.False(t, ok)
	generic := ForOp("test.add", "")
	got, ok = Lookup("test.add", NewTarget("tpu"))
	require.True(t, ok)
	require.Same(t, generic, got)

	_, ok = Lookup("test.unknown", NewTarget("cpu"))
	require.False(t, ok)
}

func TestSelect_ByDTypeOfOutput(t *testing.T) {
	// Compute functions receive the inferred output type untouched.
	s := New()
	s.AddImplement(Generic(), func(attrs opir.Attributes, inputs []opir.Tensor, outType types.Type) ([]opir.Tensor, error) {
		return []opir.Tensor{outType}, nil
	}, namedSchedule("s"), 10)
	outType := types.Make(dtypes.Float32, 2, 3)
	outs, err := s.Select(NewTarget("cpu")).Compute(nil, nil, outType)
	require.NoError(t, err)
	require.True(t, types.Equal(outType, outs[0].(types.Type)))
}
