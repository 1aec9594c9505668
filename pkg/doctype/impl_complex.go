/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// # Implements:
//   - IComplexType
//   - IComplexTypeBuilder
type complexType struct {
	typ
	emb          IComplexType
	ns           Namespace
	fields       map[QName]IField
	fieldsByName map[string]IField
	ordered      []QName

	// fields slice, built on first Fields() call after change
	snapshot atomic.Pointer[[]IField]

	// field names are registered by prefixed name only
	prefixedOnly bool
}

// Creates and returns new complex type.
//
// Super type fields are not copied into new type.
//
// # Panics:
//   - if name is empty
func NewComplexType(super IComplexType, schema, name string, ns Namespace) IComplexTypeBuilder {
	ct := &complexType{}
	ct.init(ct, super, schema, name, ns, TypeKind_Complex)
	return ct
}

func (ct *complexType) init(emb IComplexType, super IType, schema, name string, ns Namespace, kind TypeKind) {
	if name == "" {
		panic(ErrMissed("%s type name", kind.TrimString()))
	}
	ct.typ = makeType(super, schema, name, kind)
	ct.emb = emb
	ct.ns = ns
	ct.fields = make(map[QName]IField)
	ct.fieldsByName = make(map[string]IField)
}

func (ct *complexType) AddExistingField(f IField) {
	if f == nil {
		panic(ErrMissed("field to add into %v", ct.emb))
	}
	ct.putField(f)
}

func (ct *complexType) AddField(name string, t IType, defaultValue string, flags FieldFlags, constraints ...IConstraint) IFieldBuilder {
	if name == "" {
		panic(ErrMissed("field name in %v", ct.emb))
	}
	f := newField(ParseQNameWithPrefix(name, ct.ns.Prefix()), t, ct.emb, defaultValue, flags, constraints)
	ct.putField(f)
	return f
}

func (ct *complexType) Field(name string) IField {
	return ct.fieldsByName[name]
}

func (ct *complexType) FieldByQName(n QName) IField {
	return ct.fields[n]
}

func (ct *complexType) FieldCount() int { return len(ct.fields) }

func (ct *complexType) Fields() []IField {
	if ff := ct.snapshot.Load(); ff != nil {
		return *ff
	}
	ff := make([]IField, 0, len(ct.ordered))
	for _, n := range ct.ordered {
		ff = append(ff, ct.fields[n])
	}
	ct.snapshot.Store(&ff)
	return ff
}

func (ct *complexType) HasField(name string) bool {
	_, ok := ct.fieldsByName[name]
	return ok
}

func (ct *complexType) HasFields() bool { return len(ct.fields) > 0 }

func (ct *complexType) IsUnstructured() bool { return len(ct.fields) == 0 }

func (ct *complexType) Namespace() Namespace { return ct.ns }

func (ct *complexType) IsSuperTypeOf(t IType) bool { return isSuperTypeOf(ct.emb, t) }

// Complex value is a map with string keys. Field values are not validated.
func (ct *complexType) Validate(value any) (bool, error) {
	if value == nil {
		return true, nil
	}
	if _, ok := value.(map[string]any); ok {
		return true, nil
	}
	rt := reflect.TypeOf(value)
	return rt.Kind() == reflect.Map && rt.Key().Kind() == reflect.String, nil
}

func (ct *complexType) Convert(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	m, ok := asStringMap(value)
	if !ok {
		return nil, ErrIncompatibleObject(value, ct.emb)
	}
	unstructured := ct.IsUnstructured()
	res := make(map[string]any, len(m))
	for k, v := range m {
		f := ct.Field(k)
		if f == nil {
			if unstructured {
				res[k] = v
				continue
			}
			return nil, ErrPropertyNotFound(k, ct.emb)
		}
		cv, err := f.Type().Convert(v)
		if err != nil {
			return nil, fmt.Errorf("field «%s»: %w", k, err)
		}
		res[k] = cv
	}
	return res, nil
}

func (ct *complexType) Decode(string) any { return nil }

func (ct *complexType) Encode(any) (string, bool) { return "", false }

// Returns new map keyed by local field names.
//
// Content types are backed by a single blob value, so nil is returned for them.
func (ct *complexType) NewInstance() any {
	if IsContentType(ct.emb) {
		return nil
	}
	m := make(map[string]any, len(ct.fields))
	for _, f := range ct.Fields() {
		t := f.Type()
		var v any
		switch {
		case t.IsComplexType():
			v = t.NewInstance()
		case t.IsListType():
			v = []any{}
		default:
			v = f.DefaultValue()
		}
		m[f.Name().Local()] = v
	}
	return m
}

// Local and prefixed names are updated together with qualified name map.
func (ct *complexType) putField(f IField) {
	n := f.Name()
	if _, exists := ct.fields[n]; !exists {
		ct.ordered = append(ct.ordered, n)
	}
	ct.fields[n] = f
	if !ct.prefixedOnly {
		ct.fieldsByName[n.Local()] = f
	}
	ct.fieldsByName[n.Prefixed()] = f
	ct.snapshot.Store(nil)
}

func asStringMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}
