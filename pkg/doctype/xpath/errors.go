/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package xpath

import (
	"errors"

	"github.com/voedger/doctypes/pkg/doctype"
)

var ErrInvalidPathError = errors.New("invalid path")

func ErrInvalidPath(path string, err error) error {
	return doctype.EnrichError(ErrInvalidPathError, "«%s»: %v", path, err)
}

func ErrPathNotFound(path string, seg Segment, t doctype.IType) error {
	return doctype.EnrichError(doctype.ErrPropertyNotFoundError, "path «%s»: segment «%v» in %v", path, seg, t)
}
