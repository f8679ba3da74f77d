package frame

import (
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/mvaldes/tablediag/pkg/tablediag/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		dt       arrow.DataType
		expected models.ColumnType
	}{
		{arrow.PrimitiveTypes.Int8, models.TypeInteger},
		{arrow.PrimitiveTypes.Int64, models.TypeInteger},
		{arrow.PrimitiveTypes.Uint32, models.TypeInteger},
		{arrow.PrimitiveTypes.Float32, models.TypeFloat},
		{arrow.PrimitiveTypes.Float64, models.TypeFloat},
		{arrow.FixedWidthTypes.Boolean, models.TypeBoolean},
		{arrow.BinaryTypes.String, models.TypeText},
		{arrow.BinaryTypes.LargeString, models.TypeText},
		{arrow.FixedWidthTypes.Date32, models.TypeDatetime},
		{arrow.FixedWidthTypes.Timestamp_ns, models.TypeDatetime},
		{&arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String}, models.TypeCategorical},
		{arrow.BinaryTypes.Binary, models.TypeOther},
		{arrow.FixedWidthTypes.Duration_ms, models.TypeOther},
	}

	for _, tt := range tests {
		got, err := Classify(tt.dt)
		if err != nil {
			t.Errorf("Classify(%s) failed: %v", tt.dt.Name(), err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Classify(%s) = %q, expected %q", tt.dt.Name(), got, tt.expected)
		}
	}
}

func TestClassifyUnsupported(t *testing.T) {
	nested := []arrow.DataType{
		arrow.ListOf(arrow.PrimitiveTypes.Int32),
		arrow.StructOf(arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int32}),
	}
	for _, dt := range nested {
		if _, err := Classify(dt); !errors.Is(err, models.ErrUnsupportedType) {
			t.Errorf("Classify(%s): expected ErrUnsupportedType, got %v", dt.Name(), err)
		}
	}
}
