/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package xpath

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Wildcard", Pattern: `\*`},
	{Name: "Ident", Pattern: `[^/\[\]\s\d*][^/\[\]\s]*`},
	{Name: "Punct", Pattern: `[/\[\]]`},
})

var pathParser = participle.MustBuild[pathAST](
	participle.Lexer(pathLexer),
)

// Parses property path into segments.
//
// Path segments are separated by `/`, single leading slash is ignored.
// Segment is a field name, a bare list index (digits or `*`) or
// a field name followed by index in brackets.
func Parse(path string) ([]Segment, error) {
	ast, err := pathParser.ParseString("", strings.TrimPrefix(path, Separator))
	if err != nil {
		return nil, ErrInvalidPath(path, err)
	}
	ss := make([]Segment, 0, len(ast.Segments))
	for _, s := range ast.Segments {
		if s.Name == "" {
			ss = append(ss, Segment{Index: s.Index})
		} else {
			ss = append(ss, Segment{Name: s.Name, Index: s.Item})
		}
	}
	return ss, nil
}

// Returns is segment indexed
func (s Segment) IsIndexed() bool { return s.Index != "" }

// Returns is segment index is wildcard
func (s Segment) IsWildcard() bool { return s.Index == Wildcard }

// Renders segment in canonical form
func (s Segment) String() string {
	if s.Index != "" {
		return s.Index
	}
	return s.Name
}
