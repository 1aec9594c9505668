/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

// # Complex type
//
// Structural type holding fields by qualified name.
//
// Fields can be found by local or prefixed name.
type IComplexType interface {
	IType

	// Namespace of field names
	Namespace() Namespace

	// Returns field by local or prefixed name.
	//
	// If both local and prefixed entries share the same string, last added wins.
	// Returns nil if not found.
	Field(name string) IField

	// Returns field by qualified name. Returns nil if not found.
	FieldByQName(QName) IField

	HasField(name string) bool

	// Returns is type has at least one field
	HasFields() bool

	// Returns fields in add order.
	//
	// Returned slice is shared and must not be modified.
	Fields() []IField

	FieldCount() int

	// Returns is type has no own fields.
	//
	// Super type fields are not considered.
	IsUnstructured() bool
}

type IComplexTypeBuilder interface {
	IComplexType

	// Adds new field.
	//
	// Unprefixed name is qualified by namespace prefix.
	// Field with the same qualified name is replaced.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if type is nil
	AddField(name string, typ IType, defaultValue string, flags FieldFlags, constraints ...IConstraint) IFieldBuilder

	// Adds field declared by other type. Field with the same qualified name is replaced.
	AddExistingField(IField)
}

// # Schema
//
// Named and namespaced complex type, registry of locally declared types.
//
// Schema has no super type.
type ISchema interface {
	IComplexType

	// Returns local type by name. Returns nil if not found.
	Type(name string) IType

	// Returns local types in registration order.
	Types() []IType
}

type ISchemaBuilder interface {
	ISchema
	IComplexTypeBuilder

	// Registers local type. Type with the same name is replaced.
	//
	// # Panics:
	//   - if type is nil or anonymous
	RegisterType(IType)
}

// # Composite type
//
// Complex type aggregating fields of super composite and several schemas.
//
// Fields can be found by prefixed name only. Note that NewInstance, as for
// any complex type, returns a map keyed by local field names, so such a map
// can not be passed to Convert as is: its keys should be prefixed first.
type ICompositeType interface {
	IComplexType

	// Returns schema by name. Returns nil if not found.
	Schema(name string) ISchema

	HasSchema(name string) bool

	// Returns schema names in add order
	SchemaNames() []string

	// Returns schemas in add order
	Schemas() []ISchema

	SchemasCount() int
}

// # List type
//
// Homogeneous repetition of one item field.
type IListType interface {
	IType

	// Item field
	Field() IField

	// Item field local name, `item` for arrays
	FieldName() string

	// Item field type
	FieldType() IType

	// Returns is list has been declared without explicit item field name
	IsArray() bool

	// Returns is item type simple
	IsScalarList() bool

	MinCount() int

	// Returns max count. Occurs_Unbounded (-1) means unbounded
	MaxCount() int

	// Default value canonical string form, empty if none
	DefaultValueRaw() string

	// Decoded default value, nil if none
	DefaultValue() any
}
