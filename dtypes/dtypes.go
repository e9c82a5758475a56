// Package dtypes defines the DType enum: the element type tag of tensor
// types used during type inference.
package dtypes

import (
	"math"
	"strings"

	"github.com/chewxy/math32"
	"github.com/x448/float16"
)

// DType is the element type of a tensor.
type DType int32

//go:generate go tool enumer -type=DType dtypes.go

const (
	// InvalidDType represents an invalid (or not set) dtype.
	InvalidDType DType = iota

	// Bool is used as the output of comparison and logic operations.
	Bool

	Int8
	Int16
	Int32
	Int64

	Uint8
	Uint16
	Uint32
	Uint64

	Float16
	Float32
	Float64

	Complex64
	Complex128
)

// Aliases following the usual short spellings.
const (
	Invalid = InvalidDType
	PRED    = Bool

	S8  = Int8
	S16 = Int16
	S32 = Int32
	S64 = Int64

	U8  = Uint8
	U16 = Uint16
	U32 = Uint32
	U64 = Uint64

	F16 = Float16
	F32 = Float32
	F64 = Float64

	C64  = Complex64
	C128 = Complex128
)

// MapOfNames maps the various spellings of dtype names (short aliases
// included, in their original and lower-case forms) to their DType.
var MapOfNames = make(map[string]DType)

func init() {
	for _, dtype := range DTypeValues() {
		MapOfNames[dtype.String()] = dtype
		MapOfNames[strings.ToLower(dtype.String())] = dtype
	}
	for alias, dtype := range map[string]DType{
		"PRED": Bool,
		"S8":   Int8, "S16": Int16, "S32": Int32, "S64": Int64,
		"U8": Uint8, "U16": Uint16, "U32": Uint32, "U64": Uint64,
		"F16": Float16, "F32": Float32, "F64": Float64,
		"C64": Complex64, "C128": Complex128,
	} {
		MapOfNames[alias] = dtype
		MapOfNames[strings.ToLower(alias)] = dtype
	}
}

// FromName returns the DType for the given name (any of the spellings in
// MapOfNames), or InvalidDType if the name is not known.
func FromName(name string) DType {
	dtype, ok := MapOfNames[name]
	if !ok {
		return InvalidDType
	}
	return dtype
}

// FromAny introspects the Go value and returns the corresponding DType, or
// InvalidDType for unsupported types.
func FromAny(value any) DType {
	switch value.(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64, int:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64, uint:
		return Uint64
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}
	return InvalidDType
}

// IsFloat returns whether the dtype is a float point type (complex numbers
// not included).
func (dtype DType) IsFloat() bool {
	return dtype == Float16 || dtype == Float32 || dtype == Float64
}

// IsComplex returns whether the dtype is a complex number type.
func (dtype DType) IsComplex() bool {
	return dtype == Complex64 || dtype == Complex128
}

// IsInt returns whether the dtype is a signed or unsigned integer type.
func (dtype DType) IsInt() bool {
	switch dtype {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// IsUnsigned returns whether the dtype is an unsigned integer type.
func (dtype DType) IsUnsigned() bool {
	switch dtype {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// Memory returns the number of bytes needed to store one element of the
// given dtype. Bool is stored as one byte.
func (dtype DType) Memory() uintptr {
	switch dtype {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16, Float16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	}
	return 0
}

// HighestValue returns the highest value for the dtype, as a Go value of the
// corresponding type. For floats it is +Inf. Complex numbers don't define an
// ordering, so they return 0.
func (dtype DType) HighestValue() any {
	switch dtype {
	case Bool:
		return true
	case Int8:
		return int8(math.MaxInt8)
	case Int16:
		return int16(math.MaxInt16)
	case Int32:
		return int32(math.MaxInt32)
	case Int64:
		return int64(math.MaxInt64)
	case Uint8:
		return uint8(math.MaxUint8)
	case Uint16:
		return uint16(math.MaxUint16)
	case Uint32:
		return uint32(math.MaxUint32)
	case Uint64:
		return uint64(math.MaxUint64)
	case Float16:
		return float16.Inf(1)
	case Float32:
		return math32.Inf(1)
	case Float64:
		return math.Inf(1)
	case Complex64:
		return complex64(0)
	case Complex128:
		return complex128(0)
	}
	return nil
}

// LowestValue returns the lowest value for the dtype, as a Go value of the
// corresponding type. For floats it is -Inf. Complex numbers don't define an
// ordering, so they return 0.
func (dtype DType) LowestValue() any {
	switch dtype {
	case Bool:
		return false
	case Int8:
		return int8(math.MinInt8)
	case Int16:
		return int16(math.MinInt16)
	case Int32:
		return int32(math.MinInt32)
	case Int64:
		return int64(math.MinInt64)
	case Uint8:
		return uint8(0)
	case Uint16:
		return uint16(0)
	case Uint32:
		return uint32(0)
	case Uint64:
		return uint64(0)
	case Float16:
		return float16.Inf(-1)
	case Float32:
		return math32.Inf(-1)
	case Float64:
		return math.Inf(-1)
	case Complex64:
		return complex64(0)
	case Complex128:
		return complex128(0)
	}
	return nil
}

// SmallestNonZeroValueForDType returns the smallest non-zero value for the
// dtype: 1 for integer types, the smallest positive denormal for floats.
// Complex numbers return 0.
func (dtype DType) SmallestNonZeroValueForDType() any {
	switch dtype {
	case Bool:
		return true
	case Int8:
		return int8(1)
	case Int16:
		return int16(1)
	case Int32:
		return int32(1)
	case Int64:
		return int64(1)
	case Uint8:
		return uint8(1)
	case Uint16:
		return uint16(1)
	case Uint32:
		return uint32(1)
	case Uint64:
		return uint64(1)
	case Float16:
		return float16.Float16(0x0001) // Smallest positive subnormal.
	case Float32:
		return float32(math32.SmallestNonzeroFloat32)
	case Float64:
		return math.SmallestNonzeroFloat64
	case Complex64:
		return complex64(0)
	case Complex128:
		return complex128(0)
	}
	return nil
}
