/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

// Returns is type content-bearing complex type.
//
// Content types are backed by a single opaque blob value instead of a field map.
func IsContentType(t IType) bool {
	if t == nil || !t.IsComplexType() {
		return false
	}
	switch t.Name() {
	case TypeName_Content, TypeName_ExternalContent:
		return true
	}
	return false
}

// Returns ultimate primitive type for primitive and simple types.
//
// Returns nil for other types.
func UltimatePrimitive(t IType) IPrimitiveType {
	switch s := t.(type) {
	case IPrimitiveType:
		return s
	case ISimpleType:
		return s.PrimitiveType()
	}
	return nil
}
