/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package xpath

import (
	"fmt"
	"slices"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/doctypes/pkg/doctype"
)

// Returns segments of path. Parsed paths are cached, returned slice is a copy
// and may be changed by caller.
func (r *Resolver) Segments(path string) ([]Segment, error) {
	ss, err := r.segments(path)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ss), nil
}

// Returns cached segments of path. Returned slice must not be changed.
func (r *Resolver) segments(path string) ([]Segment, error) {
	if ss, ok := r.cache.Get(path); ok {
		return ss, nil
	}
	ss, err := Parse(path)
	if err != nil {
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("xpath: «%s» parsed into %d segment(s)", path, len(ss)))
	}
	r.cache.Put(path, ss)
	return ss, nil
}

// Resolves path against complex type and returns addressed field.
//
// Path is resolved from the root type, descending into complex field types.
// Index segment (digits or `*`) addresses the item field of the current list
// type. Segment `name[index]` is the same as bare `index`, name is the item
// element name and is not checked.
//
// Returns error wrapped doctype.ErrPropertyNotFoundError if path can not be resolved.
func (r *Resolver) Resolve(root doctype.IComplexType, path string) (doctype.IField, error) {
	ss, err := r.segments(path)
	if err != nil {
		return nil, err
	}

	var (
		fld doctype.IField
		cur doctype.IType = root
	)
	for _, s := range ss {
		if s.IsIndexed() {
			lt, ok := cur.(doctype.IListType)
			if !ok {
				return nil, ErrPathNotFound(path, s, cur)
			}
			fld = lt.Field()
		} else {
			ct, ok := cur.(doctype.IComplexType)
			if !ok {
				return nil, ErrPathNotFound(path, s, cur)
			}
			if fld = ct.Field(s.Name); fld == nil {
				return nil, ErrPathNotFound(path, s, cur)
			}
		}
		cur = fld.Type()
	}
	return fld, nil
}

// Returns field type addressed by path.
func (r *Resolver) ResolveType(root doctype.IComplexType, path string) (doctype.IType, error) {
	f, err := r.Resolve(root, path)
	if err != nil {
		return nil, err
	}
	return f.Type(), nil
}
