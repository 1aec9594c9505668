/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package xpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to parse paths", func(t *testing.T) {
		tests := []struct {
			path string
			want []Segment
		}{
			{"dc:title", []Segment{{Name: "dc:title"}}},
			{"/dc:title", []Segment{{Name: "dc:title"}}},
			{"a/foo[123]/b", []Segment{{Name: "a"}, {Name: "foo", Index: "123"}, {Name: "b"}}},
			{"files/0/file", []Segment{{Name: "files"}, {Index: "0"}, {Name: "file"}}},
			{"files/*/file", []Segment{{Name: "files"}, {Index: Wildcard}, {Name: "file"}}},
			{"files/item[*]", []Segment{{Name: "files"}, {Name: "item", Index: Wildcard}}},
			{"my-schema:field_2", []Segment{{Name: "my-schema:field_2"}}},
		}
		for _, tt := range tests {
			ss, err := Parse(tt.path)
			require.NoError(err, tt.path)
			require.Equal(tt.want, ss, tt.path)
		}
	})

	t.Run("must be error to parse invalid paths", func(t *testing.T) {
		for _, p := range []string{"", "/", "a//b", "a/", "a[1", "a[b]", "a/[1]", "a b"} {
			_, err := Parse(p)
			require.ErrorIs(err, ErrInvalidPathError, "%q", p)
		}
	})

	t.Run("segment props", func(t *testing.T) {
		s := Segment{Name: "foo", Index: "1"}
		require.True(s.IsIndexed())
		require.False(s.IsWildcard())
		require.Equal("1", s.String())

		s = Segment{Name: "foo"}
		require.False(s.IsIndexed())
		require.Equal("foo", s.String())

		require.True(Segment{Index: Wildcard}.IsWildcard())
	})
}
