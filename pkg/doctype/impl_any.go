/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import "fmt"

// Top type, accepts and passes through any value
var AnyType IType = newAnyType()

// Sentinel type of fields whose declaration has been retracted.
// Converts everything to nil.
var RemovedType IType = newRemovedType()

// # Implements:
//   - IType
type anyType struct {
	typ
}

func newAnyType() *anyType {
	return &anyType{typ: makeType(nil, SchemaName_Builtin, TypeName_Any, TypeKind_Any)}
}

func (a *anyType) IsSuperTypeOf(t IType) bool { return isSuperTypeOf(a, t) }

func (a *anyType) Validate(any) (bool, error) { return true, nil }

func (a *anyType) Convert(value any) (any, error) { return value, nil }

func (a *anyType) Decode(s string) any { return s }

func (a *anyType) Encode(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

func (a *anyType) NewInstance() any { return nil }

// # Implements:
//   - IType
type removedType struct {
	typ
}

func newRemovedType() *removedType {
	return &removedType{typ: makeType(nil, SchemaName_Builtin, TypeName_Removed, TypeKind_Removed)}
}

func (r *removedType) IsSuperTypeOf(t IType) bool { return isSuperTypeOf(r, t) }

func (r *removedType) Validate(any) (bool, error) { return true, nil }

func (r *removedType) Convert(any) (any, error) { return nil, nil }

func (r *removedType) Decode(string) any { return nil }

func (r *removedType) Encode(any) (string, bool) { return "", false }

func (r *removedType) NewInstance() any { return nil }
