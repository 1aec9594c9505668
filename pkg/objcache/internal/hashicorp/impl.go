/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package hashicorp

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU cache implemented by hashicorp LRU cache
type Cache[K comparable, V any] struct {
	lru *lru.Cache[K, V]
}

func New[K comparable, V any](size int, onEvicted func(K, V)) (c *Cache[K, V]) {
	var err error
	c = &Cache[K, V]{}
	c.lru, err = lru.NewWithEvict[K, V](size, onEvicted)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.lru.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	_ = c.lru.Add(key, value)
}

func (c *Cache[K, V]) Contains(key K) bool {
	return c.lru.Contains(key)
}

func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}
