/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package xpath

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/doctypes/pkg/objcache"
)

// Creates and returns new path resolver.
func New(cfg Config) *Resolver {
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Resolver{
		cache: objcache.New[string, []Segment](size, onEvicted),
	}
}

func onEvicted(path string, _ []Segment) {
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("xpath: «%s» evicted from cache", path))
	}
}
