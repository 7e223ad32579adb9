package base

import (
	"fmt"
	"strconv"
	"time"
)

// Record is a dynamically-shaped document processed by the engine, addressable by dotted field paths
//
// Values are limited to the JSON-like universe plus time.Time: string, bool, float64 and other numeric
// types, nested map[string]any / Record and []any. Records are owned by the caller; the engine only ever
// mutates deep copies made by DeepCopyRecord.
type Record map[string]any

// DeepCopyRecord makes a deep copy of the given record
//
// Nested maps and slices are copied recursively; scalar values are copied as-is
func DeepCopyRecord(source Record) Record {
	if source == nil {
		return nil
	}
	dest := make(Record, len(source))
	for key, value := range source {
		dest[key] = deepCopyValue(value)
	}
	return dest
}

func deepCopyValue(value any) any {
	switch typedValue := value.(type) {
	case Record:
		return DeepCopyRecord(typedValue)
	case map[string]any:
		return map[string]any(DeepCopyRecord(typedValue))
	case []any:
		copied := make([]any, len(typedValue))
		for i, item := range typedValue {
			copied[i] = deepCopyValue(item)
		}
		return copied
	default:
		return value
	}
}

// RenderString renders a field value as string, for transforms and error messages
//
// nil becomes an empty string; floats are rendered without a fixed number of decimals
func RenderString(value any) string {
	switch typedValue := value.(type) {
	case nil:
		return ""
	case string:
		return typedValue
	case bool:
		return strconv.FormatBool(typedValue)
	case float64:
		return strconv.FormatFloat(typedValue, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typedValue), 'f', -1, 32)
	case int:
		return strconv.Itoa(typedValue)
	case int64:
		return strconv.FormatInt(typedValue, 10)
	case time.Time:
		return typedValue.Format(time.RFC3339)
	default:
		return fmt.Sprint(typedValue)
	}
}

// ToFloat attempts to interpret a field value as float64
func ToFloat(value any) (float64, bool) {
	switch typedValue := value.(type) {
	case float64:
		return typedValue, true
	case float32:
		return float64(typedValue), true
	case int:
		return float64(typedValue), true
	case int64:
		return float64(typedValue), true
	case uint64:
		return float64(typedValue), true
	case string:
		parsed, err := strconv.ParseFloat(typedValue, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
