package frame

import (
	"cmp"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Distinct counts the column's distinct values. Missing values contribute
// one extra distinct slot when present, so the count lines up with the
// missing-value report. The count never exceeds the column length.
func Distinct(col arrow.Array) int64 {
	seen := make(map[string]struct{}, col.Len())
	hasNull := false
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			hasNull = true
			continue
		}
		seen[Format(col, i)] = struct{}{}
	}
	n := int64(len(seen))
	if hasNull {
		n++
	}
	return n
}

// MinMax returns the smallest and largest non-missing value of a numeric
// column in natural order. Both results are nil when every value is
// missing, and for element types that are not numeric.
func MinMax(col arrow.Array) (any, any) {
	switch c := col.(type) {
	case *array.Int8:
		return minMaxOf(c, c.Value)
	case *array.Int16:
		return minMaxOf(c, c.Value)
	case *array.Int32:
		return minMaxOf(c, c.Value)
	case *array.Int64:
		return minMaxOf(c, c.Value)
	case *array.Uint8:
		return minMaxOf(c, c.Value)
	case *array.Uint16:
		return minMaxOf(c, c.Value)
	case *array.Uint32:
		return minMaxOf(c, c.Value)
	case *array.Uint64:
		return minMaxOf(c, c.Value)
	case *array.Float16:
		return minMaxOf(c, func(i int) float32 { return c.Value(i).Float32() })
	case *array.Float32:
		return minMaxOf(c, c.Value)
	case *array.Float64:
		return minMaxOf(c, c.Value)
	default:
		return nil, nil
	}
}

func minMaxOf[T cmp.Ordered](col arrow.Array, value func(int) T) (any, any) {
	var lo, hi T
	found := false
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		v := value(i)
		if !found {
			lo, hi, found = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if !found {
		return nil, nil
	}
	return lo, hi
}
