/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import "fmt"

// # Implements:
//   - ISimpleType
type simpleType struct {
	typ
	primitive   IPrimitiveType
	constraints []IConstraint
}

// Creates and returns new simple type.
//
// Super type must be primitive or other simple type.
//
// # Panics:
//   - if name is empty,
//   - if super type is not primitive or simple
func NewSimpleType(super IType, schema, name string, constraints ...IConstraint) ISimpleType {
	if name == "" {
		panic(ErrMissed("simple type name"))
	}
	var prim IPrimitiveType
	switch s := super.(type) {
	case IPrimitiveType:
		prim = s
	case ISimpleType:
		prim = s.PrimitiveType()
	default:
		panic(ErrInvalid("super type of simple type «%s» should be primitive or simple, got %v", name, super))
	}
	return &simpleType{
		typ:         makeType(super, schema, name, TypeKind_Simple),
		primitive:   prim,
		constraints: append([]IConstraint(nil), constraints...),
	}
}

func (s *simpleType) PrimitiveType() IPrimitiveType { return s.primitive }

func (s *simpleType) IsPrimitive() bool { return false }

func (s *simpleType) OwnConstraints() []IConstraint { return s.constraints }

func (s *simpleType) Constraints() []IConstraint {
	cc := append([]IConstraint(nil), s.constraints...)
	return append(cc, s.super.Constraints()...)
}

func (s *simpleType) IsSuperTypeOf(t IType) bool { return isSuperTypeOf(s, t) }

func (s *simpleType) Validate(value any) (bool, error) {
	if value == nil {
		return true, nil
	}
	for _, c := range s.constraints {
		if !c.Validate(value) {
			return false, nil
		}
	}
	return s.super.Validate(value)
}

func (s *simpleType) Convert(value any) (any, error) { return s.primitive.Convert(value) }

func (s *simpleType) Decode(str string) any { return s.primitive.Decode(str) }

func (s *simpleType) Encode(value any) (string, bool) { return s.primitive.Encode(value) }

func (s *simpleType) NewInstance() any { return s.primitive.NewInstance() }

func (s *simpleType) String() string {
	return fmt.Sprintf("simple «%s» (%s)", s.name, s.primitive.Name())
}
