/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package typebridge

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/doctypes/pkg/doctype"
)

func TestBridge_Builtins(t *testing.T) {
	require := require.New(t)

	b := Provide()

	tests := []struct {
		t doctype.IType
		c reflect.Type
	}{
		{doctype.StringType, reflect.TypeOf("")},
		{doctype.IntegerType, reflect.TypeOf(int32(0))},
		{doctype.LongType, reflect.TypeOf(int64(0))},
		{doctype.DoubleType, reflect.TypeOf(float64(0))},
		{doctype.BooleanType, reflect.TypeOf(true)},
		{doctype.BinaryType, reflect.TypeOf([]byte{})},
		{doctype.DateType, reflect.TypeOf(time.Now())},
	}
	for _, tt := range tests {
		t.Run(tt.t.Name(), func(t *testing.T) {
			require.Equal(tt.c, b.Class(tt.t))
			require.Equal(tt.t, b.Type(tt.c))
		})
	}

	require.Len(b.Types(), len(doctype.PrimitiveTypes()))

	t.Run("empty bridge", func(t *testing.T) {
		e := New()
		require.Nil(e.Class(doctype.StringType))
		require.Nil(e.Type(reflect.TypeOf("")))
		require.Empty(e.Types())
	})
}

func TestBridge_SimpleTypes(t *testing.T) {
	require := require.New(t)

	b := Provide()

	code := doctype.NewSimpleType(doctype.StringType, "test", "code", doctype.MaxLen(4))
	upper := doctype.NewSimpleType(code, "test", "upperCode", doctype.Pattern(`^[A-Z]*$`))

	require.Equal(reflect.TypeOf(""), b.Class(code))
	require.Equal(reflect.TypeOf(""), b.Class(upper))

	require.Nil(b.Class(doctype.AnyType))
	require.Nil(b.Class(nil))
}

func TestBridge_Bind(t *testing.T) {
	require := require.New(t)

	logger.SetLogLevel(logger.LogLevelVerbose)
	defer logger.SetLogLevel(logger.LogLevelInfo)

	type money int64
	moneyClass := reflect.TypeOf(money(0))
	int64Class := reflect.TypeOf(int64(0))

	b := Provide()

	t.Run("must be ok to bind new class", func(t *testing.T) {
		b.Bind(doctype.LongType, moneyClass)

		require.Equal(moneyClass, b.Class(doctype.LongType), "most recent binding wins")
		require.Equal(doctype.LongType, b.Type(moneyClass))
		require.Equal(doctype.LongType, b.Type(int64Class), "previous class still maps to type")
	})

	t.Run("must be ok to rebind class to other type", func(t *testing.T) {
		b.Bind(doctype.IntegerType, int64Class)

		require.Equal(doctype.IntegerType, b.Type(int64Class))
		require.Equal(int64Class, b.Class(doctype.IntegerType))
		require.Equal(moneyClass, b.Class(doctype.LongType))
	})

	t.Run("must be ok to bind complex type", func(t *testing.T) {
		type person struct{ Name string }
		personClass := reflect.TypeOf(person{})

		pt := doctype.NewComplexType(nil, "test", "person", doctype.DefaultNS)
		pt.AddField("name", doctype.StringType, "", doctype.FieldFlags_None)

		b.Bind(pt, personClass)
		require.Equal(personClass, b.Class(pt))
		require.Equal(pt, b.Type(personClass))
	})

	t.Run("must be sorted types", func(t *testing.T) {
		tt := b.Types()
		require.Len(tt, len(doctype.PrimitiveTypes())+1)
		for i := 1; i < len(tt); i++ {
			require.LessOrEqual(tt[i-1].Name(), tt[i].Name())
		}
	})

	t.Run("must be panic if nil", func(t *testing.T) {
		require.Panics(func() { b.Bind(nil, moneyClass) })
		require.Panics(func() { b.Bind(doctype.LongType, nil) })
	})
}

func TestBridge_PrimitiveClass(t *testing.T) {
	require := require.New(t)

	b := New()

	tests := []struct {
		c    reflect.Type
		want reflect.Type
	}{
		{reflect.TypeOf((*bool)(nil)), reflect.TypeOf(false)},
		{reflect.TypeOf((*byte)(nil)), reflect.TypeOf(byte(0))},
		{reflect.TypeOf((*int8)(nil)), reflect.TypeOf(int8(0))},
		{reflect.TypeOf((*int16)(nil)), reflect.TypeOf(int16(0))},
		{reflect.TypeOf((*rune)(nil)), reflect.TypeOf(int32(0))},
		{reflect.TypeOf((*int64)(nil)), reflect.TypeOf(int64(0))},
		{reflect.TypeOf((*float32)(nil)), reflect.TypeOf(float32(0))},
		{reflect.TypeOf((*float64)(nil)), reflect.TypeOf(float64(0))},
		{reflect.TypeOf(""), reflect.TypeOf("")},
		{reflect.TypeOf((*string)(nil)), reflect.TypeOf((*string)(nil))},
		{reflect.TypeOf(int64(0)), reflect.TypeOf(int64(0))},
	}
	for _, tt := range tests {
		require.Equal(tt.want, b.PrimitiveClass(tt.c), tt.c.String())
	}
}

func TestBridge_Concurrent(t *testing.T) {
	b := Provide()

	wg := sync.WaitGroup{}
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Bind(doctype.LongType, reflect.TypeOf(int64(0)))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = b.Class(doctype.LongType)
				_ = b.Type(reflect.TypeOf(""))
				_ = b.Types()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, reflect.TypeOf(int64(0)), b.Class(doctype.LongType))
}
