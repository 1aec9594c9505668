/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import "fmt"

// # Implements:
//   - IType (partially, variants complete the rest)
type typ struct {
	name       string
	schemaName string
	super      IType
	kind       TypeKind
}

func makeType(super IType, schema, name string, kind TypeKind) typ {
	return typ{
		name:       name,
		schemaName: schema,
		super:      super,
		kind:       kind,
	}
}

func (t *typ) Name() string { return t.name }

func (t *typ) SchemaName() string { return t.schemaName }

func (t *typ) SuperType() IType { return t.super }

func (t *typ) Kind() TypeKind { return t.kind }

func (t *typ) Constraints() []IConstraint { return nil }

func (t *typ) IsSimpleType() bool {
	return t.kind == TypeKind_Primitive || t.kind == TypeKind_Simple
}

func (t *typ) IsComplexType() bool {
	return t.kind == TypeKind_Complex || t.kind == TypeKind_Composite
}

func (t *typ) IsListType() bool { return t.kind == TypeKind_List }

func (t *typ) IsAnyType() bool { return t.kind == TypeKind_Any }

func (t *typ) IsCompositeType() bool { return t.kind == TypeKind_Composite }

func (t *typ) String() string {
	return fmt.Sprintf("%s-type «%s»", t.kind.TrimString(), t.name)
}

func (t *typ) isType() {}

// Returns is t is the specified type or one of its super types.
func isSuperTypeOf(t, other IType) bool {
	for o := other; o != nil; o = o.SuperType() {
		if o == t {
			return true
		}
	}
	return false
}

// Returns super types chain of specified type, nearest first.
//
// Type itself is not included.
func TypeHierarchy(t IType) []IType {
	var h []IType
	for s := t.SuperType(); s != nil; s = s.SuperType() {
		h = append(h, s)
	}
	return h
}
