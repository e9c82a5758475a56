package rel

import (
	"slices"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/opir"
	"github.com/gomlx/opir/dtypes"
	"github.com/gomlx/opir/exprs"
	"github.com/gomlx/opir/types"
)

// ConcreteBroadcast computes the output shape of a binary elementwise
// operation under NumPy-style broadcasting: shapes are aligned at the
// trailing dimension and walked right-to-left; at each aligned pair, equal
// dimensions pass through, a literal 1 broadcasts to the other side, and the
// Any wildcard is assumed compatible (see below). Leading dimensions of the
// higher-rank input pass through unchanged.
//
// When one side is the Any wildcard the other side is used and a warning is
// logged: the wildcard's runtime value is only constrained to be 1 or equal
// to the other side, and that is not checked here.
func ConcreteBroadcast(t1, t2 types.TensorType, outputDType dtypes.DType) (types.TensorType, error) {
	ndim1 := t1.Rank()
	ndim2 := t2.Rank()
	oshape := make([]exprs.Expr, 0, max(ndim1, ndim2))
	i := 1
	for ; i <= min(ndim1, ndim2); i++ {
		s1 := t1.Shape[ndim1-i]
		s2 := t2.Shape[ndim2-i]
		switch {
		case EqualCheck(s1, s2):
			oshape = append(oshape, s1)
		case EqualConstInt(s1, 1):
			oshape = append(oshape, s2)
		case EqualConstInt(s2, 1):
			oshape = append(oshape, s1)
		case exprs.IsAny(s1):
			klog.Warningf("assuming ? == 1 || ? == %s in broadcast of %s and %s", s2, t1, t2)
			oshape = append(oshape, s2)
		case exprs.IsAny(s2):
			klog.Warningf("assuming ? == 1 || ? == %s in broadcast of %s and %s", s1, t1, t2)
			oshape = append(oshape, s1)
		default:
			return types.TensorType{}, errors.Errorf(
				"incompatible broadcast type %s and %s", t1, t2)
		}
	}

	// Leading dimensions of the longer shape pass through.
	maxNdim := ndim1
	rshape := t1.Shape
	if ndim2 > ndim1 {
		maxNdim = ndim2
		rshape = t2.Shape
	}
	for ; i <= maxNdim; i++ {
		oshape = append(oshape, rshape[maxNdim-i])
	}

	// Dimensions were gathered back-to-front.
	slices.Reverse(oshape)
	return types.TensorType{DType: outputDType, Shape: oshape}, nil
}

// BroadcastRel is the type relation of binary elementwise arithmetic
// operators: 2 inputs, 1 output, output dtype taken from the inputs. It
// defers while either input is not yet a TensorType.
func BroadcastRel(list []types.Type, numInputs int, attrs opir.Attributes, reporter Reporter) (Resolution, error) {
	return broadcastRel(list, reporter, dtypes.InvalidDType)
}

// BroadcastCompRel is the type relation of binary elementwise comparison
// operators: like BroadcastRel, but the output dtype is forced to Bool.
func BroadcastCompRel(list []types.Type, numInputs int, attrs opir.Attributes, reporter Reporter) (Resolution, error) {
	return broadcastRel(list, reporter, dtypes.Bool)
}

func broadcastRel(list []types.Type, reporter Reporter, outputDType dtypes.DType) (Resolution, error) {
	if len(list) != 3 {
		return Deferred, errors.Errorf(
			"broadcast relation expects 3 types (2 inputs, 1 output), got %d", len(list))
	}
	t0, ok := types.AsTensor(list[0])
	if !ok {
		return Deferred, nil
	}
	t1, ok := types.AsTensor(list[1])
	if !ok {
		return Deferred, nil
	}
	if t0.DType != t1.DType {
		return Deferred, errors.Errorf("dtype mismatch in broadcast of %s and %s", t0, t1)
	}
	if outputDType == dtypes.InvalidDType {
		outputDType = t0.DType
	}
	out, err := ConcreteBroadcast(t0, t1, outputDType)
	if err != nil {
		return Deferred, err
	}
	if err := reporter.Assign(2, out); err != nil {
		return Deferred, err
	}
	return Resolved, nil
}
