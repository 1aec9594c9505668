/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package xpath

import (
	"regexp"
	"strings"
)

// segment name followed by index in brackets
var nonCanonicalIndex = regexp.MustCompile(`[^/\[\]]+\[(\d+|\*)\]`)

// Returns canonical form of property path.
//
// Single leading slash is stripped and every `name[index]` segment is replaced
// by its bare index, e.g. `a/foo[123]/b` becomes `a/123/b` and `a/foo[*]/b`
// becomes `a/*/b`.
func Canonical(path string) string {
	path = strings.TrimPrefix(path, Separator)
	if !strings.Contains(path, "[") {
		return path
	}
	return nonCanonicalIndex.ReplaceAllString(path, "$1")
}
