/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

// # QName
//
// Namespace-aware field or type name.
//
// Local name plus optional prefix: `<prefix>:<local>` or `<local>`.
// Two names are equal if their prefixed forms are equal, so QName
// may be compared with `==` and used as a map key.
type QName struct {
	local    string
	prefix   string
	prefixed string
}

// # Namespace
//
// XML-like namespace of a schema: URI and default prefix.
type Namespace struct {
	uri    string
	prefix string
}
