/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListType(t *testing.T) {
	require := require.New(t)

	t.Run("array should have implicit item field", func(t *testing.T) {
		l := NewListType("test", "tags", StringType, "", "", 0, 1)
		require.True(l.IsArray())
		require.Equal(ListItemFieldName, l.FieldName())
		require.Equal(StringType, l.FieldType())
		require.Equal(l, l.Field().DeclaringType())
		require.True(l.IsScalarList())
		require.Equal(TypeKind_List, l.Kind())
		require.True(l.IsListType())
		require.False(l.IsSimpleType())
		require.Nil(l.SuperType())
		require.Equal(0, l.MinCount())
		require.Equal(1, l.MaxCount())
	})

	t.Run("named list should have explicit item field", func(t *testing.T) {
		l := NewListType("test", "tags", StringType, "tag", "", 0, 1)
		require.False(l.IsArray())
		require.Equal("tag", l.FieldName())
	})

	t.Run("item field constraints", func(t *testing.T) {
		code := NewSimpleType(StringType, "test", "code", NotNull(), MaxLen(3))

		arr := NewListType("test", "codes", code, "", "", 0, Occurs_Unbounded)
		require.Len(arr.Field().Constraints(), 1, "arrays do not constrain item occurrence")
		require.Equal(ConstraintKind_MaxLen, arr.Field().Constraints()[0].Kind())

		named := NewListType("test", "codes", code, "code", "", 0, Occurs_Unbounded)
		require.Len(named.Field().Constraints(), 2)
	})

	t.Run("list of complex items is not scalar", func(t *testing.T) {
		item := NewComplexType(nil, "test", "item", DefaultNS)
		l := NewListType("test", "items", item, "", "", 0, Occurs_Unbounded)
		require.False(l.IsScalarList())
	})

	t.Run("must be panics on invalid lists", func(t *testing.T) {
		require.Panics(func() { NewListType("test", "", StringType, "", "", 0, 1) })
		require.Panics(func() { NewListType("test", "l", nil, "", "", 0, 1) })
		require.Panics(func() { NewListType("test", "l", StringType, "", "", -1, 1) })
		require.Panics(func() { NewListType("test", "l", StringType, "", "", 0, -2) })
	})
}

func TestListType_Decode(t *testing.T) {
	require := require.New(t)

	strings := NewListType("test", "strings", StringType, "", "", 0, Occurs_Unbounded)
	require.Equal([]any{"a", "b", "c"}, strings.Decode("a b c"))
	require.Equal([]any{"a", "", "b"}, strings.Decode("a  b"), "no escaping, every space splits")
	require.Equal([]any{"a"}, strings.Decode("a  "), "trailing empty tokens are dropped")
	require.Nil(strings.Decode(""))
	require.Nil(strings.Decode("   "))

	longs := NewListType("test", "longs", LongType, "", "", 0, Occurs_Unbounded)
	require.Equal([]any{int64(1), nil, int64(3)}, longs.Decode("1 x 3"), "best effort decoding")
}

func TestListType_Encode(t *testing.T) {
	require := require.New(t)

	longs := NewListType("test", "longs", LongType, "", "", 0, Occurs_Unbounded)

	s, ok := longs.Encode([]int64{1, 2, 3})
	require.True(ok)
	require.Equal("1 2 3", s)
	require.Equal([]any{int64(1), int64(2), int64(3)}, longs.Decode(s))

	s, ok = longs.Encode([2]int{4, 5})
	require.True(ok)
	require.Equal("4 5", s)

	_, ok = longs.Encode([]any{1, "x"})
	require.False(ok)
	_, ok = longs.Encode(1)
	require.False(ok)
	_, ok = longs.Encode(nil)
	require.False(ok)
}

func TestListType_ValidateConvert(t *testing.T) {
	require := require.New(t)

	l := NewListType("test", "longs", LongType, "", "", 0, Occurs_Unbounded)

	for _, v := range []any{nil, []any{}, []string{"x"}, [3]int{}} {
		ok, err := l.Validate(v)
		require.NoError(err)
		require.True(ok, "%#v", v)
	}
	for _, v := range []any{"s", 1, map[string]any{}} {
		ok, err := l.Validate(v)
		require.NoError(err)
		require.False(ok, "%#v", v)
	}

	v, err := l.Convert([]string{"1", "2"})
	require.NoError(err)
	require.Equal([]any{int64(1), int64(2)}, v)

	v, err = l.Convert(nil)
	require.NoError(err)
	require.Nil(v)

	_, err = l.Convert("1 2")
	require.ErrorIs(err, ErrIncompatibleObjectError)

	_, err = l.Convert([]any{"1", "x"})
	require.ErrorIs(err, ErrTypeError)
	require.ErrorContains(err, "item 1")
}

func TestListType_NewInstance(t *testing.T) {
	require := require.New(t)

	l := NewListType("test", "longs", LongType, "", "", 0, Occurs_Unbounded)
	require.Equal([]any{}, l.NewInstance())
	require.Nil(l.DefaultValue())

	d := NewListType("test", "longs", LongType, "", "1 2", 0, Occurs_Unbounded)
	require.Equal("1 2", d.DefaultValueRaw())
	require.Equal([]any{int64(1), int64(2)}, d.DefaultValue())
	require.Equal([]any{int64(1), int64(2)}, d.NewInstance())
}
