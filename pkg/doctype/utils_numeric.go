/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"math"

	"golang.org/x/exp/constraints"
)

func intToInt64[T constraints.Integer](v T) (int64, bool) {
	i := int64(v)
	if T(i) != v || (v < 0) != (i < 0) {
		return 0, false
	}
	return i, true
}

// Returns integer value of any Go integer kind
func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return intToInt64(v)
	case int8:
		return intToInt64(v)
	case int16:
		return intToInt64(v)
	case int32:
		return intToInt64(v)
	case int64:
		return v, true
	case uint:
		return intToInt64(v)
	case uint8:
		return intToInt64(v)
	case uint16:
		return intToInt64(v)
	case uint32:
		return intToInt64(v)
	case uint64:
		return intToInt64(v)
	}
	return 0, false
}

// Returns float value of any Go numeric kind
func asFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	if i, ok := asInt64(value); ok {
		return float64(i), true
	}
	return 0, false
}

// Truncates float to integer in [min, max] range
func truncFloat[T constraints.Signed](f float64) (T, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	r := T(t)
	if float64(r) != t {
		return 0, false
	}
	return r, true
}

func isNumeric(value any) bool {
	_, ok := asFloat64(value)
	return ok
}

func isInteger(value any) bool {
	_, ok := asInt64(value)
	return ok
}
