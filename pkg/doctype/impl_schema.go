/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import "fmt"

// # Implements:
//   - ISchema
//   - ISchemaBuilder
type schema struct {
	complexType
	types      map[string]IType
	typesOrder []string
}

// Creates and returns new schema.
//
// Schema is declared in itself: its schema name equals its name.
//
// # Panics:
//   - if name is empty
func NewSchema(name string, ns Namespace) ISchemaBuilder {
	s := &schema{
		types: make(map[string]IType),
	}
	s.init(s, nil, name, name, ns, TypeKind_Complex)
	return s
}

func (s *schema) RegisterType(t IType) {
	if t == nil {
		panic(ErrMissed("type to register in %v", s))
	}
	n := t.Name()
	if n == "" {
		panic(ErrMissed("name of type to register in %v", s))
	}
	if _, exists := s.types[n]; !exists {
		s.typesOrder = append(s.typesOrder, n)
	}
	s.types[n] = t
}

func (s *schema) Type(name string) IType {
	return s.types[name]
}

func (s *schema) Types() []IType {
	tt := make([]IType, 0, len(s.typesOrder))
	for _, n := range s.typesOrder {
		tt = append(tt, s.types[n])
	}
	return tt
}

func (s *schema) String() string {
	return fmt.Sprintf("schema «%s»", s.name)
}
