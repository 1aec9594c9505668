/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package xpath

import "github.com/voedger/doctypes/pkg/objcache"

// Path segment: field name, list index or both (`name[index]`).
type Segment struct {
	// Field name, empty for bare index segments
	Name string

	// List index digits or Wildcard, empty if segment is not indexed
	Index string
}

type Config struct {
	// Parsed paths cache size. DefaultCacheSize is used if zero
	CacheSize int
}

// Resolves property paths to fields.
//
// Safe for concurrent use.
type Resolver struct {
	cache objcache.ICache[string, []Segment]
}

type pathAST struct {
	Segments []*segmentAST `parser:"@@ ( '/' @@ )*"`
}

type segmentAST struct {
	Index string `parser:"  @(Int | Wildcard)"`
	Name  string `parser:"| @Ident"`
	Item  string `parser:"  ( '[' @(Int | Wildcard) ']' )?"`
}
