/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import "fmt"

// # Implements:
//   - IField
//   - IFieldBuilder
type field struct {
	name         QName
	typ          IType
	declaring    IType
	defaultValue string
	flags        FieldFlags
	minOccurs    int
	maxOccurs    int
	maxLength    int
	constraints  []IConstraint
}

// # Panics:
//   - if type is nil
func newField(name QName, typ, declaring IType, defaultValue string, flags FieldFlags, constraints []IConstraint) *field {
	if typ == nil {
		panic(ErrMissed("type of field «%v»", name))
	}
	return &field{
		name:         name,
		typ:          typ,
		declaring:    declaring,
		defaultValue: defaultValue,
		flags:        flags,
		minOccurs:    DefaultMinOccurs,
		maxOccurs:    DefaultMaxOccurs,
		maxLength:    DefaultMaxLength,
		constraints:  append([]IConstraint(nil), constraints...),
	}
}

func (f *field) Name() QName { return f.name }

func (f *field) Type() IType { return f.typ }

func (f *field) DeclaringType() IType { return f.declaring }

func (f *field) DefaultValueRaw() string { return f.defaultValue }

// Default value is decoded on every call, so the current type decode is always used.
func (f *field) DefaultValue() any {
	if f.defaultValue == "" {
		return nil
	}
	return f.typ.Decode(f.defaultValue)
}

func (f *field) Nillable() bool { return f.flags&FieldFlag_Nillable != 0 }

func (f *field) Constant() bool { return f.flags&FieldFlag_Constant != 0 }

func (f *field) MinOccurs() int { return f.minOccurs }

func (f *field) MaxOccurs() int { return f.maxOccurs }

func (f *field) MaxLength() int { return f.maxLength }

func (f *field) Constraints() []IConstraint { return f.constraints }

func (f *field) SetDefaultValue(v string) IFieldBuilder {
	f.defaultValue = v
	return f
}

func (f *field) SetNillable(v bool) IFieldBuilder {
	f.setFlag(FieldFlag_Nillable, v)
	return f
}

func (f *field) SetConstant(v bool) IFieldBuilder {
	f.setFlag(FieldFlag_Constant, v)
	return f
}

func (f *field) SetMinOccurs(v int) IFieldBuilder {
	if v < 0 {
		panic(ErrOutOfBounds("field «%v» min occurs %d is negative", f.name, v))
	}
	f.minOccurs = v
	return f
}

func (f *field) SetMaxOccurs(v int) IFieldBuilder {
	if v < Occurs_Unbounded {
		panic(ErrOutOfBounds("field «%v» max occurs %d", f.name, v))
	}
	f.maxOccurs = v
	return f
}

func (f *field) SetMaxLength(v int) IFieldBuilder {
	if v < Occurs_Unbounded {
		panic(ErrOutOfBounds("field «%v» max length %d", f.name, v))
	}
	f.maxLength = v
	return f
}

func (f *field) String() string {
	return fmt.Sprintf("field «%v»: %s", f.name, f.typ.Name())
}

func (f *field) setFlag(flag FieldFlags, v bool) {
	if v {
		f.flags |= flag
	} else {
		f.flags &^= flag
	}
}
