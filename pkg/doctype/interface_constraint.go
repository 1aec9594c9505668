/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

// Constraint kinds enumeration
type ConstraintKind uint8

const (
	ConstraintKind_null ConstraintKind = iota

	// Value must not be nil
	ConstraintKind_NotNull

	// Minimum length of string or bytes. Value type is int
	ConstraintKind_MinLen

	// Maximum length of string or bytes. Value type is int
	ConstraintKind_MaxLen

	// Regular expression for string or bytes. Value type is *regexp.Regexp
	ConstraintKind_Pattern

	// Numeric bounds. Value type is float64
	ConstraintKind_MinIncl
	ConstraintKind_MinExcl
	ConstraintKind_MaxIncl
	ConstraintKind_MaxExcl

	// Enumeration of allowed values. Value type is sorted slice of string, int32, int64 or float64
	ConstraintKind_Enum

	ConstraintKind_count
)

// # Constraint
//
// Predicate over a value.
type IConstraint interface {
	Kind() ConstraintKind

	// Returns constraint value
	Value() any

	// Returns is value satisfies constraint.
	//
	// Nil value satisfies all constraints except NotNull.
	Validate(value any) bool
}
