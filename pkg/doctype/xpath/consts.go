/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package xpath

const (
	// Separates path segments
	Separator = "/"

	// Index placeholder matching any list item
	Wildcard = "*"

	DefaultCacheSize = 1024
)
