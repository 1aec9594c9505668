/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package typebridge

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"

	"github.com/voedger/doctypes/pkg/doctype"
)

// # Implements:
//   - IBridge
type bridge struct {
	mu          sync.RWMutex
	typeToClass map[doctype.IType]reflect.Type
	classToType map[reflect.Type]doctype.IType
}

func newBridge() *bridge {
	return &bridge{
		typeToClass: make(map[doctype.IType]reflect.Type),
		classToType: make(map[reflect.Type]doctype.IType),
	}
}

func (b *bridge) Bind(t doctype.IType, c reflect.Type) {
	if t == nil || c == nil {
		panic(doctype.ErrMissed("type to bind: %v ⇄ %v", t, c))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if logger.IsVerbose() {
		if prev, ok := b.typeToClass[t]; ok && prev != c {
			logger.Verbose(fmt.Sprintf("typebridge: «%s» rebound from %v to %v", t.Name(), prev, c))
		}
		if prev, ok := b.classToType[c]; ok && prev != t {
			logger.Verbose(fmt.Sprintf("typebridge: %v rebound from «%s» to «%s»", c, prev.Name(), t.Name()))
		}
	}
	b.typeToClass[t] = c
	b.classToType[c] = t
}

func (b *bridge) Type(c reflect.Type) doctype.IType {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.classToType[c]
}

func (b *bridge) Class(t doctype.IType) reflect.Type {
	if s, ok := t.(doctype.ISimpleType); ok && !s.IsPrimitive() {
		t = s.PrimitiveType()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.typeToClass[t]
}

func (b *bridge) PrimitiveClass(c reflect.Type) reflect.Type {
	if p, ok := primitiveClasses[c]; ok {
		return p
	}
	return c
}

func (b *bridge) Types() []doctype.IType {
	b.mu.RLock()
	tt := maps.Keys(b.typeToClass)
	b.mu.RUnlock()

	slices.SortFunc(tt, func(a, b doctype.IType) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return tt
}

// Pointers to basic types play the role of boxed values
var primitiveClasses = map[reflect.Type]reflect.Type{
	reflect.TypeOf((*bool)(nil)):    reflect.TypeOf(false),
	reflect.TypeOf((*byte)(nil)):    reflect.TypeOf(byte(0)),
	reflect.TypeOf((*int8)(nil)):    reflect.TypeOf(int8(0)),
	reflect.TypeOf((*int16)(nil)):   reflect.TypeOf(int16(0)),
	reflect.TypeOf((*int32)(nil)):   reflect.TypeOf(int32(0)), // rune too
	reflect.TypeOf((*int64)(nil)):   reflect.TypeOf(int64(0)),
	reflect.TypeOf((*float32)(nil)): reflect.TypeOf(float32(0)),
	reflect.TypeOf((*float64)(nil)): reflect.TypeOf(float64(0)),
}

// Go types of built-in primitives
var builtinClasses = map[doctype.IPrimitiveType]reflect.Type{
	doctype.StringType:  reflect.TypeOf(""),
	doctype.IntegerType: reflect.TypeOf(int32(0)),
	doctype.LongType:    reflect.TypeOf(int64(0)),
	doctype.DoubleType:  reflect.TypeOf(float64(0)),
	doctype.BooleanType: reflect.TypeOf(false),
	doctype.BinaryType:  reflect.TypeOf([]byte(nil)),
	doctype.DateType:    reflect.TypeOf(time.Time{}),
}

func (b *bridge) bindBuiltins() {
	for _, p := range doctype.PrimitiveTypes() {
		b.Bind(p, builtinClasses[p])
	}
}
