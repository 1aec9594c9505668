/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

const (
	// Separates prefix and local name in prefixed names, e.g. `dc:title`
	QNamePrefixSeparator = ":"

	// Schema name used by built-in types
	SchemaName_Builtin = "system"

	// Item field name of array lists
	ListItemFieldName = "item"

	// Separates list items in list canonical string form
	ListItemSeparator = " "
)

const (
	TypeName_String  = "string"
	TypeName_Integer = "integer"
	TypeName_Long    = "long"
	TypeName_Double  = "double"
	TypeName_Boolean = "boolean"
	TypeName_Binary  = "binary"
	TypeName_Date    = "date"

	TypeName_Any     = "any"
	TypeName_Removed = "__removed"

	// Complex types with these names are backed by a single blob value
	TypeName_Content         = "content"
	TypeName_ExternalContent = "externalcontent"
)

const (
	// Unbounded max occurs or max length
	Occurs_Unbounded = -1

	DefaultMinOccurs = 1
	DefaultMaxOccurs = 1
	DefaultMaxLength = Occurs_Unbounded
)

// Field flags
const (
	FieldFlag_Nillable FieldFlags = 1 << iota
	FieldFlag_Constant

	FieldFlags_None FieldFlags = 0
)
