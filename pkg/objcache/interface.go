/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package objcache

// Objects cache.
//
// Safe for concurrent use.
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns true and value if key exists, false and zero value overwise.
	// Marks key as recently used
	Get(K) (value V, ok bool)

	// Puts value with key. Evicts least recently used value if cache is full
	Put(K, V)

	// Returns is key exists. Does not change key recency
	Contains(K) bool

	// Returns number of cached values
	Len() int
}
