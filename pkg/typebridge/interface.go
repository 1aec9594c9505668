/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package typebridge

import (
	"reflect"

	"github.com/voedger/doctypes/pkg/doctype"
)

// # Bridge
//
// Two-way mapping between Go types and document types.
//
// Every Go type maps to exactly one document type at a time.
// Safe for concurrent use.
type IBridge interface {
	// Binds document type and Go type.
	//
	// Most recent binding wins in both directions. Go types bound to the
	// document type before still map to it.
	//
	// # Panics:
	//   - if any of types is nil
	Bind(t doctype.IType, c reflect.Type)

	// Returns document type bound to Go type. Returns nil if not bound.
	Type(c reflect.Type) doctype.IType

	// Returns Go type bound to document type. Returns nil if not bound.
	//
	// Simple types are never bound, their ultimate primitive type is used.
	Class(t doctype.IType) reflect.Type

	// Maps Go pointers to basic numeric, boolean and rune types
	// to pointed types, returns other types unchanged.
	PrimitiveClass(c reflect.Type) reflect.Type

	// Returns bound document types, sorted by name.
	Types() []doctype.IType
}
