/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package doctype is a runtime type system describing the shape of documents.
//
// Types are built once, single-threaded, by schema loaders and are read
// concurrently afterwards.
package doctype
