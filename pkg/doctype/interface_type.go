/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

// Types kinds enumeration
type TypeKind uint8

const (
	TypeKind_null TypeKind = iota

	// Built-in leaf types: string, integer, long, double, boolean, binary and date
	TypeKind_Primitive

	// Primitive type refined by constraints
	TypeKind_Simple

	// Structural type with fields. Schemas are complex types too
	TypeKind_Complex

	// Homogeneous repetition of one item field
	TypeKind_List

	// Complex type aggregating fields of several schemas
	TypeKind_Composite

	// Top type, accepts any value
	TypeKind_Any

	// Sentinel type of retracted field declarations
	TypeKind_Removed

	TypeKind_count
)

// # Type
//
// Type describes the shape of a document value.
//
// Set of type variants is closed: only this package implements IType.
type IType interface {
	// Type name
	Name() string

	// Name of schema the type declared in
	SchemaName() string

	// Returns super type or nil if type has no super type
	SuperType() IType

	// Type kind
	Kind() TypeKind

	// Constraints applied to values, including inherited from super types
	Constraints() []IConstraint

	// Returns is type primitive or simple
	IsSimpleType() bool

	// Returns is type complex, including schemas and composites
	IsComplexType() bool

	IsListType() bool

	IsAnyType() bool

	IsCompositeType() bool

	// Returns is type is the specified type or one of its super types.
	//
	// Types are compared by identity.
	IsSuperTypeOf(IType) bool

	// Checks value shape. Nil value is always valid.
	Validate(value any) (bool, error)

	// Coerces value into canonical in-memory representation.
	//
	// Returns error wrapped ErrTypeError if value shape does not match the type kind.
	Convert(value any) (any, error)

	// Parses canonical string form. Returns nil if string can not be decoded.
	Decode(string) any

	// Renders value into canonical string form. Returns false if value can not be encoded.
	Encode(value any) (string, bool)

	// Returns fresh instance filled with defaults.
	NewInstance() any

	isType()
}

// # Primitive type
//
// Terminal of decode, encode and convert chains.
type IPrimitiveType interface {
	IType

	PrimitiveKind() PrimitiveKind
}

// # Simple type
//
// Primitive type refined by zero or more constraints.
type ISimpleType interface {
	IType

	// Returns ultimate primitive type
	PrimitiveType() IPrimitiveType

	// Returns is simple type is primitive
	IsPrimitive() bool

	// Constraints declared by this type only, without inherited
	OwnConstraints() []IConstraint
}
