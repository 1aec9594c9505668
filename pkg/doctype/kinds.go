/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"strconv"
	"strings"
)

var typeKindNames = [TypeKind_count]string{
	"TypeKind_null",
	"TypeKind_Primitive",
	"TypeKind_Simple",
	"TypeKind_Complex",
	"TypeKind_List",
	"TypeKind_Composite",
	"TypeKind_Any",
	"TypeKind_Removed",
}

func (k TypeKind) String() string {
	if k < TypeKind_count {
		return typeKindNames[k]
	}
	return "TypeKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Renders a TypeKind in human-readable form, without "TypeKind_" prefix,
// suitable for debugging or error messages
func (k TypeKind) TrimString() string {
	const pref = "TypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

func (k TypeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var constraintKindNames = [ConstraintKind_count]string{
	"ConstraintKind_null",
	"ConstraintKind_NotNull",
	"ConstraintKind_MinLen",
	"ConstraintKind_MaxLen",
	"ConstraintKind_Pattern",
	"ConstraintKind_MinIncl",
	"ConstraintKind_MinExcl",
	"ConstraintKind_MaxIncl",
	"ConstraintKind_MaxExcl",
	"ConstraintKind_Enum",
}

func (k ConstraintKind) String() string {
	if k < ConstraintKind_count {
		return constraintKindNames[k]
	}
	return "ConstraintKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Renders a ConstraintKind in human-readable form, without "ConstraintKind_" prefix,
// suitable for debugging or error messages
func (k ConstraintKind) TrimString() string {
	const pref = "ConstraintKind_"
	return strings.TrimPrefix(k.String(), pref)
}

var primitiveKindNames = [PrimitiveKind_count]string{
	"PrimitiveKind_null",
	"PrimitiveKind_String",
	"PrimitiveKind_Integer",
	"PrimitiveKind_Long",
	"PrimitiveKind_Double",
	"PrimitiveKind_Boolean",
	"PrimitiveKind_Binary",
	"PrimitiveKind_Date",
}

func (k PrimitiveKind) String() string {
	if k < PrimitiveKind_count {
		return primitiveKindNames[k]
	}
	return "PrimitiveKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Renders a PrimitiveKind in human-readable form, without "PrimitiveKind_" prefix
func (k PrimitiveKind) TrimString() string {
	const pref = "PrimitiveKind_"
	return strings.TrimPrefix(k.String(), pref)
}
