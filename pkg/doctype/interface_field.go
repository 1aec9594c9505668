/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

// Field flags bit set
type FieldFlags uint8

// # Field
//
// Named and typed member of complex or list type.
type IField interface {
	Name() QName

	Type() IType

	// Type that created the field
	DeclaringType() IType

	// Default value canonical string form, empty if none
	DefaultValueRaw() string

	// Default value decoded by current field type.
	//
	// Returns nil if field has no default value.
	DefaultValue() any

	Nillable() bool

	Constant() bool

	MinOccurs() int

	// Returns max occurs. Occurs_Unbounded (-1) means unbounded
	MaxOccurs() int

	// Returns max length. Occurs_Unbounded (-1) means unbounded
	MaxLength() int

	// Field level constraints
	Constraints() []IConstraint
}

// Field builder.
//
// Setters are builder-time only and must not be called
// after field is shared between goroutines.
type IFieldBuilder interface {
	IField

	SetDefaultValue(string) IFieldBuilder
	SetNillable(bool) IFieldBuilder
	SetConstant(bool) IFieldBuilder

	// # Panics:
	//   - if value is negative
	SetMinOccurs(int) IFieldBuilder

	// # Panics:
	//   - if value is less then Occurs_Unbounded
	SetMaxOccurs(int) IFieldBuilder

	// # Panics:
	//   - if value is less then Occurs_Unbounded
	SetMaxLength(int) IFieldBuilder
}
