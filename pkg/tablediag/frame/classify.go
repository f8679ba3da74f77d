package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/mvaldes/tablediag/pkg/tablediag/models"
)

// Classify maps an arrow element type onto the diagnostic type enum. The
// mapping looks only at the declared type, never at values. Nested and
// extension types cannot be classified and fail with ErrUnsupportedType.
func Classify(dt arrow.DataType) (models.ColumnType, error) {
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return models.TypeInteger, nil
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return models.TypeFloat, nil
	case arrow.BOOL:
		return models.TypeBoolean, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return models.TypeText, nil
	case arrow.TIMESTAMP, arrow.DATE32, arrow.DATE64:
		return models.TypeDatetime, nil
	case arrow.DICTIONARY:
		return models.TypeCategorical, nil
	case arrow.NULL, arrow.BINARY, arrow.LARGE_BINARY,
		arrow.DECIMAL128, arrow.DECIMAL256,
		arrow.TIME32, arrow.TIME64, arrow.DURATION:
		return models.TypeOther, nil
	default:
		return "", fmt.Errorf("%w: %s", models.ErrUnsupportedType, dt.Name())
	}
}
