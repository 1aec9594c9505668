/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstraints(t *testing.T) {
	tests := []struct {
		name string
		c    IConstraint
		ok   []any
		fail []any
	}{
		{"not null", NotNull(), []any{"", 0}, []any{nil}},
		{"min len", MinLen(2), []any{"ab", "ДЖ", []byte{1, 2}, nil}, []any{"a", "Д", []byte{1}, 12}},
		{"max len", MaxLen(2), []any{"ab", "", []byte{}}, []any{"abc", []byte{1, 2, 3}}},
		{"pattern", Pattern(`^\w+$`), []any{"word", []byte("w")}, []any{"two words", 1}},
		{"unanchored pattern", Pattern(`[a-z]+`), []any{"abc", []byte("x")}, []any{"ABC-x-123", "abc ", " abc", []byte("a1")}},
		{"pattern alternatives", Pattern(`a|bc`), []any{"a", "bc"}, []any{"abc", "ab", "xbc"}},
		{"min incl", MinIncl(1), []any{1, 1.5, int64(2)}, []any{0, 0.99, "2"}},
		{"min excl", MinExcl(1), []any{1.01, 2}, []any{1}},
		{"max incl", MaxIncl(1), []any{1, -5}, []any{1.01}},
		{"max excl", MaxExcl(1), []any{0.99}, []any{1, 2}},
		{"string enum", Enum("b", "a", "b"), []any{"a", "b"}, []any{"c", 1}},
		{"int32 enum", Enum[int32](3, 1), []any{1, int64(3)}, []any{2, "1"}},
		{"int64 enum", Enum[int64](10), []any{uint16(10)}, []any{11}},
		{"float enum", Enum(0.5, 1.5), []any{0.5, float32(1.5)}, []any{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.ok {
				require.True(t, tt.c.Validate(v), "%v should accept %#v", tt.c, v)
			}
			for _, v := range tt.fail {
				require.False(t, tt.c.Validate(v), "%v should reject %#v", tt.c, v)
			}
		})
	}
}

func TestConstraintValues(t *testing.T) {
	require := require.New(t)

	require.Equal(ConstraintKind_MinLen, MinLen(1).Kind())
	require.Equal(1, MinLen(1).Value())
	require.Equal(`^\d+$`, Pattern(`^\d+$`).Value())
	require.Equal(`^(?:[a-z]+)$`, Pattern(`[a-z]+`).(*constraint).re.String())
	require.Equal([]string{"a", "b"}, Enum("b", "a", "b").Value(), "enum should be sorted and compacted")
	require.Equal("Pattern: `^\\d+$`", Pattern(`^\d+$`).(interface{ String() string }).String())

	t.Run("NewConstraint should make constraints by kind", func(t *testing.T) {
		require.Equal(MinLen(3), NewConstraint(ConstraintKind_MinLen, 3))
		require.Equal(MaxIncl(10), NewConstraint(ConstraintKind_MaxIncl, 10.0))
		require.Equal(Enum[int64](1, 2), NewConstraint(ConstraintKind_Enum, []int64{2, 1}))
		require.Equal(ConstraintKind_NotNull, NewConstraint(ConstraintKind_NotNull, nil).Kind())
	})

	t.Run("must be panics on invalid constraints", func(t *testing.T) {
		require.Panics(func() { MinLen(-1) })
		require.Panics(func() { MaxLen(-1) })
		require.Panics(func() { Pattern(`[`) })
		require.Panics(func() { MinIncl(math.NaN()) })
		require.Panics(func() { MinExcl(math.Inf(1)) })
		require.Panics(func() { MaxIncl(math.Inf(-1)) })
		require.Panics(func() { MaxExcl(math.NaN()) })
		require.Panics(func() { Enum[string]() })
		require.Panics(func() { NewConstraint(ConstraintKind_Enum, []bool{true}) })
		require.Panics(func() { NewConstraint(ConstraintKind_count, nil) })
	})
}

func TestConstraintKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("ConstraintKind_MaxLen", ConstraintKind_MaxLen.String())
	require.Equal("MaxLen", ConstraintKind_MaxLen.TrimString())
	require.Equal("ConstraintKind(200)", ConstraintKind(200).String())
	require.Equal("Composite", TypeKind_Composite.TrimString())
	require.Equal("Date", PrimitiveKind_Date.TrimString())
}
