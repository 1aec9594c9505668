/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"fmt"
	"reflect"
	"strings"
)

// # Implements:
//   - IListType
type listType struct {
	typ
	field        *field
	minCount     int
	maxCount     int
	defaultValue string
	isArray      bool
}

// Creates and returns new list type.
//
// If field name is empty, then list is an array: item field is named `item`
// and NotNull constraints of item type are not copied to item field, array
// cardinality is expressed by min and max count only. Otherwise all item type
// constraints are copied to item field.
//
// # Panics:
//   - if name is empty,
//   - if item type is nil,
//   - if min count is negative or max count is less then Occurs_Unbounded
func NewListType(schema, name string, itemType IType, fieldName string, defaultValue string, minCount, maxCount int) IListType {
	if name == "" {
		panic(ErrMissed("list type name"))
	}
	if itemType == nil {
		panic(ErrMissed("item type of list «%s»", name))
	}
	if minCount < 0 {
		panic(ErrOutOfBounds("list «%s» min count %d is negative", name, minCount))
	}
	if maxCount < Occurs_Unbounded {
		panic(ErrOutOfBounds("list «%s» max count %d", name, maxCount))
	}

	l := &listType{
		typ:          makeType(nil, schema, name, TypeKind_List),
		minCount:     minCount,
		maxCount:     maxCount,
		defaultValue: defaultValue,
	}

	constraints := itemType.Constraints()
	if fieldName == "" {
		l.isArray = true
		fieldName = ListItemFieldName
		constraints = withoutNotNull(constraints)
	}
	l.field = newField(ParseQName(fieldName), itemType, l, "", FieldFlags_None, constraints)
	return l
}

func (l *listType) Field() IField { return l.field }

func (l *listType) FieldName() string { return l.field.Name().Local() }

func (l *listType) FieldType() IType { return l.field.Type() }

func (l *listType) IsArray() bool { return l.isArray }

func (l *listType) IsScalarList() bool { return l.field.Type().IsSimpleType() }

func (l *listType) MinCount() int { return l.minCount }

func (l *listType) MaxCount() int { return l.maxCount }

func (l *listType) DefaultValueRaw() string { return l.defaultValue }

func (l *listType) DefaultValue() any {
	if l.defaultValue == "" {
		return nil
	}
	return l.Decode(l.defaultValue)
}

func (l *listType) IsSuperTypeOf(t IType) bool { return isSuperTypeOf(l, t) }

// List value is any slice or array.
func (l *listType) Validate(value any) (bool, error) {
	if value == nil {
		return true, nil
	}
	if _, ok := value.([]any); ok {
		return true, nil
	}
	k := reflect.TypeOf(value).Kind()
	return k == reflect.Slice || k == reflect.Array, nil
}

// Returns items converted by item type.
func (l *listType) Convert(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	items, ok := asSlice(value)
	if !ok {
		return nil, ErrIncompatibleObject(value, l)
	}
	itemType := l.FieldType()
	res := make([]any, len(items))
	for i, v := range items {
		cv, err := itemType.Convert(v)
		if err != nil {
			return nil, fmt.Errorf("list «%s» item %d: %w", l.name, i, err)
		}
		res[i] = cv
	}
	return res, nil
}

// Splits string by single space and decodes every token by item type.
//
// Embedded spaces in item string forms are not supported, there is no escaping.
// Trailing empty tokens are dropped. Returns nil for blank string.
func (l *listType) Decode(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	tokens := strings.Split(s, ListItemSeparator)
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	itemType := l.FieldType()
	res := make([]any, len(tokens))
	for i, t := range tokens {
		res[i] = itemType.Decode(t)
	}
	return res
}

// Joins items encoded by item type with single space.
//
// Returns false if value is not a slice or any item can not be encoded.
func (l *listType) Encode(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	items, ok := asSlice(value)
	if !ok {
		return "", false
	}
	itemType := l.FieldType()
	ss := make([]string, len(items))
	for i, v := range items {
		s, ok := itemType.Encode(v)
		if !ok {
			return "", false
		}
		ss[i] = s
	}
	return strings.Join(ss, ListItemSeparator), true
}

// Returns decoded default value or empty slice.
func (l *listType) NewInstance() any {
	if v := l.DefaultValue(); v != nil {
		return v
	}
	return []any{}
}

func (l *listType) String() string {
	return fmt.Sprintf("list «%s» of %s", l.name, l.FieldType().Name())
}

func asSlice(value any) ([]any, bool) {
	if s, ok := value.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	s := make([]any, rv.Len())
	for i := range s {
		s[i] = rv.Index(i).Interface()
	}
	return s, true
}
