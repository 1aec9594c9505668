/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

// Resolves type by name.
//
// Types are searched in order:
//   - schema local types, if schema is not nil,
//   - provider types, if provider is not nil,
//   - built-in primitive types and any type.
//
// Returns error wrapped ErrTypeBindingError if type is not found.
func ResolveType(provider ITypeProvider, schema ISchema, name string) (IType, error) {
	if schema != nil {
		if t := schema.Type(name); t != nil {
			return t, nil
		}
	}
	if provider != nil {
		if t := provider.TypeByName(name); t != nil {
			return t, nil
		}
	}
	if p := PrimitiveTypeByName(name); p != nil {
		return p, nil
	}
	if name == TypeName_Any {
		return AnyType, nil
	}
	return nil, ErrTypeNotResolved(name)
}
