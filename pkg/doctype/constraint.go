/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"unicode/utf8"
)

// Returns new not null constraint.
func NotNull() IConstraint {
	return newConstraint(ConstraintKind_NotNull, nil)
}

// Returns new minimum length constraint for string or bytes values.
//
// # Panics:
//   - if value is negative
func MinLen(v int) IConstraint {
	if v < 0 {
		panic(ErrOutOfBounds("minimum length %d is negative", v))
	}
	return newConstraint(ConstraintKind_MinLen, v)
}

// Returns new maximum length constraint for string or bytes values.
//
// # Panics:
//   - if value is negative
func MaxLen(v int) IConstraint {
	if v < 0 {
		panic(ErrOutOfBounds("maximum length %d is negative", v))
	}
	return newConstraint(ConstraintKind_MaxLen, v)
}

// Returns new pattern constraint for string or bytes values.
//
// Pattern is implicitly anchored: the whole value should match it.
//
// # Panics:
//   - if value is not valid regular expression
func Pattern(v string) IConstraint {
	re, err := regexp.Compile(`^(?:` + v + `)$`)
	if err != nil {
		panic(err)
	}
	c := newConstraint(ConstraintKind_Pattern, v)
	c.re = re
	return c
}

// Returns new minimum inclusive constraint for numeric values.
//
// # Panics:
//   - if value is NaN
//   - if value is +infinite
func MinIncl(v float64) IConstraint {
	checkMinBound(v)
	return newConstraint(ConstraintKind_MinIncl, v)
}

// Returns new minimum exclusive constraint for numeric values.
//
// # Panics:
//   - if value is NaN
//   - if value is +infinite
func MinExcl(v float64) IConstraint {
	checkMinBound(v)
	return newConstraint(ConstraintKind_MinExcl, v)
}

// Returns new maximum inclusive constraint for numeric values.
//
// # Panics:
//   - if value is NaN
//   - if value is -infinite
func MaxIncl(v float64) IConstraint {
	checkMaxBound(v)
	return newConstraint(ConstraintKind_MaxIncl, v)
}

// Returns new maximum exclusive constraint for numeric values.
//
// # Panics:
//   - if value is NaN
//   - if value is -infinite
func MaxExcl(v float64) IConstraint {
	checkMaxBound(v)
	return newConstraint(ConstraintKind_MaxExcl, v)
}

type enumerable interface {
	string | int32 | int64 | float64
}

// Returns new enumeration constraint.
//
// Passed values will be sorted and duplicates removed before placing
// into returning constraint.
//
// # Panics:
//   - if enumeration values list is empty
func Enum[T enumerable](v ...T) IConstraint {
	if len(v) == 0 {
		panic(ErrMissed("enumeration values (%T)", v))
	}
	c := slices.Clone(v)
	slices.Sort(c)
	c = slices.Compact(c)
	return newConstraint(ConstraintKind_Enum, c)
}

// Creates and returns new constraint.
//
// # Panics:
//   - if kind is unknown,
//   - if value is not compatible with kind.
func NewConstraint(kind ConstraintKind, value any) IConstraint {
	switch kind {
	case ConstraintKind_NotNull:
		return NotNull()
	case ConstraintKind_MinLen:
		return MinLen(value.(int))
	case ConstraintKind_MaxLen:
		return MaxLen(value.(int))
	case ConstraintKind_Pattern:
		return Pattern(value.(string))
	case ConstraintKind_MinIncl:
		return MinIncl(value.(float64))
	case ConstraintKind_MinExcl:
		return MinExcl(value.(float64))
	case ConstraintKind_MaxIncl:
		return MaxIncl(value.(float64))
	case ConstraintKind_MaxExcl:
		return MaxExcl(value.(float64))
	case ConstraintKind_Enum:
		switch v := value.(type) {
		case []string:
			return Enum(v...)
		case []int32:
			return Enum(v...)
		case []int64:
			return Enum(v...)
		case []float64:
			return Enum(v...)
		}
		panic(ErrIncompatible("enumeration values type %T", value))
	}
	panic(ErrInvalid("constraint kind %v", kind))
}

func checkMinBound(v float64) {
	if math.IsNaN(v) {
		panic(ErrInvalid("minimum value is NaN"))
	}
	if math.IsInf(v, 1) {
		panic(ErrInvalid("minimum value is positive infinity"))
	}
}

func checkMaxBound(v float64) {
	if math.IsNaN(v) {
		panic(ErrInvalid("maximum value is NaN"))
	}
	if math.IsInf(v, -1) {
		panic(ErrInvalid("maximum value is negative infinity"))
	}
}

// # Implements:
//   - IConstraint
type constraint struct {
	kind  ConstraintKind
	value any
	re    *regexp.Regexp // anchored pattern
}

func newConstraint(k ConstraintKind, v any) *constraint {
	return &constraint{kind: k, value: v}
}

func (c constraint) Kind() ConstraintKind { return c.kind }

func (c constraint) Value() any { return c.value }

func (c constraint) Validate(value any) bool {
	if value == nil {
		return c.kind != ConstraintKind_NotNull
	}
	switch c.kind {
	case ConstraintKind_NotNull:
		return true
	case ConstraintKind_MinLen:
		l, ok := valueLen(value)
		return ok && l >= c.value.(int)
	case ConstraintKind_MaxLen:
		l, ok := valueLen(value)
		return ok && l <= c.value.(int)
	case ConstraintKind_Pattern:
		switch v := value.(type) {
		case string:
			return c.re.MatchString(v)
		case []byte:
			return c.re.Match(v)
		}
		return false
	case ConstraintKind_MinIncl:
		f, ok := asFloat64(value)
		return ok && f >= c.value.(float64)
	case ConstraintKind_MinExcl:
		f, ok := asFloat64(value)
		return ok && f > c.value.(float64)
	case ConstraintKind_MaxIncl:
		f, ok := asFloat64(value)
		return ok && f <= c.value.(float64)
	case ConstraintKind_MaxExcl:
		f, ok := asFloat64(value)
		return ok && f < c.value.(float64)
	case ConstraintKind_Enum:
		return enumContains(c.value, value)
	}
	return false
}

func (c constraint) String() (s string) {
	const (
		maxLen   = 64
		ellipsis = `…`
	)

	switch c.kind {
	case ConstraintKind_NotNull:
		s = c.kind.TrimString()
	case ConstraintKind_Pattern:
		s = fmt.Sprintf("%s: `%v`", c.kind.TrimString(), c.value)
	default:
		s = fmt.Sprintf("%s: %v", c.kind.TrimString(), c.value)
	}
	if len(s) > maxLen {
		s = s[:maxLen-1] + ellipsis
	}
	return s
}

// Returns length of string (in runes) or bytes
func valueLen(value any) (int, bool) {
	switch v := value.(type) {
	case string:
		return utf8.RuneCountInString(v), true
	case []byte:
		return len(v), true
	}
	return 0, false
}

func enumContains(enum, value any) bool {
	switch e := enum.(type) {
	case []string:
		if s, ok := value.(string); ok {
			_, found := slices.BinarySearch(e, s)
			return found
		}
	case []int32:
		if i, ok := asInt64(value); ok && i >= math.MinInt32 && i <= math.MaxInt32 {
			_, found := slices.BinarySearch(e, int32(i))
			return found
		}
	case []int64:
		if i, ok := asInt64(value); ok {
			_, found := slices.BinarySearch(e, i)
			return found
		}
	case []float64:
		if f, ok := asFloat64(value); ok {
			_, found := slices.BinarySearch(e, f)
			return found
		}
	}
	return false
}

// Returns constraints without NotNull
func withoutNotNull(cc []IConstraint) []IConstraint {
	res := make([]IConstraint, 0, len(cc))
	for _, c := range cc {
		if c.Kind() != ConstraintKind_NotNull {
			res = append(res, c)
		}
	}
	return res
}
