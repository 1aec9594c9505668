/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package objcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	require := require.New(t)

	evicted := map[string]int{}
	c := New[string, int](2, func(k string, v int) { evicted[k] = v })

	c.Put("one", 1)
	c.Put("two", 2)
	require.Equal(2, c.Len())

	v, ok := c.Get("one")
	require.True(ok)
	require.Equal(1, v)

	c.Put("three", 3)
	require.Equal(map[string]int{"two": 2}, evicted, "least recently used should be evicted")
	require.False(c.Contains("two"))
	require.True(c.Contains("one"))
	require.True(c.Contains("three"))

	v, ok = c.Get("two")
	require.False(ok)
	require.Zero(v)

	t.Run("must be ok without eviction callback", func(t *testing.T) {
		c := New[int, string](1, nil)
		c.Put(1, "a")
		c.Put(2, "b")
		require.Equal(1, c.Len())
		require.False(c.Contains(1))
	})

	t.Run("must be panic if size is not positive", func(t *testing.T) {
		require.Panics(func() { New[int, int](0, nil) })
	})
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](16, nil)

	wg := sync.WaitGroup{}
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				c.Put(g*100+i, i)
				_, _ = c.Get(g*100 + i)
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, 16, c.Len())
}
