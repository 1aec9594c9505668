/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package typebridge

// Creates and returns new bridge with built-in primitive types bound.
func Provide() IBridge {
	b := newBridge()
	b.bindBuiltins()
	return b
}

// Creates and returns new bridge without any bindings.
func New() IBridge {
	return newBridge()
}
