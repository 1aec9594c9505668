/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

// # Type provider
//
// Global type registry, implemented by schema manager.
type ITypeProvider interface {
	// Returns type by name. Returns nil if not found.
	TypeByName(name string) IType
}
