/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

// Primitive kinds enumeration
type PrimitiveKind uint8

const (
	PrimitiveKind_null PrimitiveKind = iota

	// Go representation: string
	PrimitiveKind_String

	// Go representation: int32
	PrimitiveKind_Integer

	// Go representation: int64
	PrimitiveKind_Long

	// Go representation: float64
	PrimitiveKind_Double

	// Go representation: bool
	PrimitiveKind_Boolean

	// Go representation: []byte, validate and convert also accept io.Reader
	PrimitiveKind_Binary

	// Go representation: time.Time
	PrimitiveKind_Date

	PrimitiveKind_count
)
