package frame

import (
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Format renders the value at row as a string. Missing values render as
// the empty string.
func Format(col arrow.Array, row int) string {
	if col.IsNull(row) {
		return ""
	}

	switch c := col.(type) {
	case *array.String:
		return c.Value(row)
	case *array.LargeString:
		return c.Value(row)
	case *array.Boolean:
		return strconv.FormatBool(c.Value(row))
	case *array.Int8:
		return strconv.FormatInt(int64(c.Value(row)), 10)
	case *array.Int16:
		return strconv.FormatInt(int64(c.Value(row)), 10)
	case *array.Int32:
		return strconv.FormatInt(int64(c.Value(row)), 10)
	case *array.Int64:
		return strconv.FormatInt(c.Value(row), 10)
	case *array.Uint8:
		return strconv.FormatUint(uint64(c.Value(row)), 10)
	case *array.Uint16:
		return strconv.FormatUint(uint64(c.Value(row)), 10)
	case *array.Uint32:
		return strconv.FormatUint(uint64(c.Value(row)), 10)
	case *array.Uint64:
		return strconv.FormatUint(c.Value(row), 10)
	case *array.Float16:
		return c.Value(row).String()
	case *array.Float32:
		return strconv.FormatFloat(float64(c.Value(row)), 'g', -1, 32)
	case *array.Float64:
		return strconv.FormatFloat(c.Value(row), 'g', -1, 64)
	case *array.Date32:
		return c.Value(row).ToTime().Format("2006-01-02")
	case *array.Date64:
		return c.Value(row).ToTime().Format("2006-01-02")
	case *array.Timestamp:
		unit := c.DataType().(*arrow.TimestampType).Unit
		return c.Value(row).ToTime(unit).Format("2006-01-02 15:04:05.999999999")
	case *array.Dictionary:
		return Format(c.Dictionary(), c.GetValueIndex(row))
	default:
		return col.ValueStr(row)
	}
}
