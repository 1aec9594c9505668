/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
)

// Built-in primitive types
var (
	StringType  IPrimitiveType = newPrimitive(PrimitiveKind_String, TypeName_String)
	IntegerType IPrimitiveType = newPrimitive(PrimitiveKind_Integer, TypeName_Integer)
	LongType    IPrimitiveType = newPrimitive(PrimitiveKind_Long, TypeName_Long)
	DoubleType  IPrimitiveType = newPrimitive(PrimitiveKind_Double, TypeName_Double)
	BooleanType IPrimitiveType = newPrimitive(PrimitiveKind_Boolean, TypeName_Boolean)
	BinaryType  IPrimitiveType = newPrimitive(PrimitiveKind_Binary, TypeName_Binary)
	DateType    IPrimitiveType = newPrimitive(PrimitiveKind_Date, TypeName_Date)
)

// Returns built-in primitive types in primitive kinds order
func PrimitiveTypes() []IPrimitiveType {
	return []IPrimitiveType{StringType, IntegerType, LongType, DoubleType, BooleanType, BinaryType, DateType}
}

// Returns built-in primitive type by name. Returns nil if not found.
func PrimitiveTypeByName(name string) IPrimitiveType {
	for _, p := range PrimitiveTypes() {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Date canonical string form
const DateLayout = time.RFC3339Nano

// Date only form, accepted by decode
const DateOnlyLayout = time.DateOnly

// # Implements:
//   - IPrimitiveType
type primitiveType struct {
	typ
	pk PrimitiveKind
}

func newPrimitive(pk PrimitiveKind, name string) *primitiveType {
	return &primitiveType{
		typ: makeType(nil, SchemaName_Builtin, name, TypeKind_Primitive),
		pk:  pk,
	}
}

func (p *primitiveType) PrimitiveKind() PrimitiveKind { return p.pk }

func (p *primitiveType) IsSuperTypeOf(t IType) bool { return isSuperTypeOf(p, t) }

func (p *primitiveType) NewInstance() any { return nil }

func (p *primitiveType) String() string {
	return fmt.Sprintf("primitive «%s»", p.name)
}

func (p *primitiveType) Validate(value any) (bool, error) {
	if value == nil {
		return true, nil
	}
	switch p.pk {
	case PrimitiveKind_String:
		_, ok := value.(string)
		return ok, nil
	case PrimitiveKind_Integer:
		i, ok := asInt64(value)
		return ok && i >= math.MinInt32 && i <= math.MaxInt32, nil
	case PrimitiveKind_Long:
		return isInteger(value), nil
	case PrimitiveKind_Double:
		return isNumeric(value), nil
	case PrimitiveKind_Boolean:
		_, ok := value.(bool)
		return ok, nil
	case PrimitiveKind_Binary:
		switch value.(type) {
		case []byte, io.Reader:
			return true, nil
		}
		return false, nil
	case PrimitiveKind_Date:
		switch value.(type) {
		case time.Time, *time.Time:
			return true, nil
		}
		return false, nil
	}
	return false, nil
}

func (p *primitiveType) Decode(s string) any {
	switch p.pk {
	case PrimitiveKind_String:
		return s
	}
	if s == "" {
		return nil
	}
	switch p.pk {
	case PrimitiveKind_Integer:
		if i, err := strconv.ParseInt(s, 10, 32); err == nil {
			return int32(i)
		}
	case PrimitiveKind_Long:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	case PrimitiveKind_Double:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	case PrimitiveKind_Boolean:
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	case PrimitiveKind_Binary:
		return []byte(s)
	case PrimitiveKind_Date:
		if t, ok := parseDate(s); ok {
			return t
		}
	}
	return nil
}

func (p *primitiveType) Encode(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	switch p.pk {
	case PrimitiveKind_String:
		switch v := value.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		}
	case PrimitiveKind_Integer:
		if i, ok := asInt64(value); ok && i >= math.MinInt32 && i <= math.MaxInt32 {
			return strconv.FormatInt(i, 10), true
		}
	case PrimitiveKind_Long:
		if i, ok := asInt64(value); ok {
			return strconv.FormatInt(i, 10), true
		}
	case PrimitiveKind_Double:
		if f, ok := asFloat64(value); ok {
			return strconv.FormatFloat(f, 'g', -1, 64), true
		}
	case PrimitiveKind_Boolean:
		if b, ok := value.(bool); ok {
			return strconv.FormatBool(b), true
		}
	case PrimitiveKind_Binary:
		switch v := value.(type) {
		case []byte:
			return string(v), true
		case string:
			return v, true
		}
	case PrimitiveKind_Date:
		switch v := value.(type) {
		case time.Time:
			return v.Format(DateLayout), true
		case *time.Time:
			if v != nil {
				return v.Format(DateLayout), true
			}
		}
	}
	return "", false
}

func (p *primitiveType) Convert(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch p.pk {
	case PrimitiveKind_String:
		return p.convertString(value)
	case PrimitiveKind_Integer:
		return p.convertInteger(value)
	case PrimitiveKind_Long:
		return p.convertLong(value)
	case PrimitiveKind_Double:
		return p.convertDouble(value)
	case PrimitiveKind_Boolean:
		return p.convertBoolean(value)
	case PrimitiveKind_Binary:
		return p.convertBinary(value)
	case PrimitiveKind_Date:
		return p.convertDate(value)
	}
	return nil, ErrIncompatibleObject(value, p)
}

func (p *primitiveType) convertString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	if i, ok := asInt64(value); ok {
		return strconv.FormatInt(i, 10), nil
	}
	if f, ok := asFloat64(value); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return nil, ErrIncompatibleObject(value, p)
}

func (p *primitiveType) convertInteger(value any) (any, error) {
	switch v := value.(type) {
	case int32:
		return v, nil
	case string:
		i, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIncompatibleObject(value, p), err)
		}
		return int32(i), nil
	}
	if i, ok := asInt64(value); ok {
		if i < math.MinInt32 || i > math.MaxInt32 {
			return nil, ErrType("value %d is out of «%s» range", i, p.name)
		}
		return int32(i), nil
	}
	if f, ok := asFloat64(value); ok {
		if i, ok := truncFloat[int32](f); ok {
			return i, nil
		}
		return nil, ErrType("value %v is out of «%s» range", f, p.name)
	}
	return nil, ErrIncompatibleObject(value, p)
}

func (p *primitiveType) convertLong(value any) (any, error) {
	if s, ok := value.(string); ok {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIncompatibleObject(value, p), err)
		}
		return i, nil
	}
	if i, ok := asInt64(value); ok {
		return i, nil
	}
	if f, ok := asFloat64(value); ok {
		if i, ok := truncFloat[int64](f); ok {
			return i, nil
		}
		return nil, ErrType("value %v is out of «%s» range", f, p.name)
	}
	return nil, ErrIncompatibleObject(value, p)
}

func (p *primitiveType) convertDouble(value any) (any, error) {
	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIncompatibleObject(value, p), err)
		}
		return f, nil
	}
	if f, ok := asFloat64(value); ok {
		return f, nil
	}
	return nil, ErrIncompatibleObject(value, p)
}

func (p *primitiveType) convertBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIncompatibleObject(value, p), err)
		}
		return b, nil
	}
	if f, ok := asFloat64(value); ok {
		return f != 0, nil
	}
	return nil, ErrIncompatibleObject(value, p)
}

func (p *primitiveType) convertBinary(value any) (any, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case io.Reader:
		// streams are passed as is, reading them is up to the caller
		return v, nil
	}
	return nil, ErrIncompatibleObject(value, p)
}

func (p *primitiveType) convertDate(value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return *v, nil
	case string:
		if t, ok := parseDate(v); ok {
			return t, nil
		}
		return nil, ErrIncompatibleObject(value, p)
	}
	if ms, ok := asInt64(value); ok {
		return time.UnixMilli(ms).UTC(), nil
	}
	return nil, ErrIncompatibleObject(value, p)
}

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(DateOnlyLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
