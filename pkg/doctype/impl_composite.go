/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"fmt"
	"slices"

	"github.com/untillpro/goutils/logger"
)

// # Implements:
//   - ICompositeType
type compositeType struct {
	complexType
	schemas     map[string]ISchema
	schemaNames []string
}

// Creates and returns new composite type.
//
// Schemas of super composite type are added first, then specified schemas, in order.
// All schema fields are copied into composite field set. If several schemas declare
// a field with the same prefixed name, the field of the later schema silently replaces
// the earlier one.
//
// Fields are found by prefixed name only.
//
// # Panics:
//   - if name is empty,
//   - if any schema is nil
func NewCompositeType(super ICompositeType, schemaName, name string, schemas ...ISchema) ICompositeType {
	ct := &compositeType{
		schemas: make(map[string]ISchema),
	}
	ct.init(ct, super, schemaName, name, DefaultNS, TypeKind_Composite)
	ct.prefixedOnly = true

	if super != nil {
		for _, s := range super.Schemas() {
			ct.addSchema(s)
		}
	}
	for _, s := range schemas {
		ct.addSchema(s)
	}
	return ct
}

func (ct *compositeType) HasSchema(name string) bool {
	_, ok := ct.schemas[name]
	return ok
}

func (ct *compositeType) Schema(name string) ISchema {
	return ct.schemas[name]
}

func (ct *compositeType) SchemaNames() []string {
	return slices.Clone(ct.schemaNames)
}

func (ct *compositeType) Schemas() []ISchema {
	ss := make([]ISchema, 0, len(ct.schemaNames))
	for _, n := range ct.schemaNames {
		ss = append(ss, ct.schemas[n])
	}
	return ss
}

func (ct *compositeType) SchemasCount() int { return len(ct.schemas) }

func (ct *compositeType) String() string {
	return fmt.Sprintf("composite «%s»", ct.name)
}

func (ct *compositeType) addSchema(s ISchema) {
	if s == nil {
		panic(ErrMissed("schema to add into %v", ct))
	}
	n := s.Name()
	if _, exists := ct.schemas[n]; !exists {
		ct.schemaNames = append(ct.schemaNames, n)
	}
	ct.schemas[n] = s
	for _, f := range s.Fields() {
		if logger.IsVerbose() {
			if prev := ct.FieldByQName(f.Name()); prev != nil && prev != f {
				logger.Verbose(fmt.Sprintf("%v: field «%v» of %v replaces field of %v", ct, f.Name(), s, prev.DeclaringType()))
			}
		}
		ct.AddExistingField(f)
	}
}
