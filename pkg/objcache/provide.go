/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package objcache

import "github.com/voedger/doctypes/pkg/objcache/internal/hashicorp"

// Creates and return new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param. Optional onEvicted cb is called then some value evicted from cache.
//
// # Panics:
//   - if size is not positive
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return hashicorp.New[K, V](size, onEvicted)
}
