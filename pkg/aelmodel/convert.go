package aelmodel

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// toText renders a scalar entity value as text. JSON numbers decode as float64, so whole
// floats are printed without a fractional part ("1993" rather than "1993.000000").
func toText(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatInt(int64(val), 10), true
		}
		return strconv.FormatFloat(val, 'g', -1, 64), true
	case float32:
		return toText(float64(val))
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return fmt.Sprint(val), true
	}
}

// toInt converts a rating-like value to an int. Floats are truncated and strings may
// carry surrounding whitespace, anything else is an error.
func toInt(v any) (int, error) {
	switch val := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: nil is not an integer", ErrInvalidValue)
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case int32:
		return int(val), nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidValue, val)
		}
		return int(val), nil
	case float32:
		return toInt(float64(val))
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidValue, err)
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

// isBlank reports the values the catalog uses to mean "no value" for a present key.
func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case int:
		return val == 0
	case int64:
		return val == 0
	case bool:
		return !val
	case json.Number:
		return val.String() == "" || val.String() == "0"
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
