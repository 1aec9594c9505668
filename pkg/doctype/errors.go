/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// General type system error.
var ErrTypeError = errors.New("type error")

func ErrType(msg string, args ...any) error {
	return EnrichError(ErrTypeError, msg, args...)
}

// Value shape does not match the type kind. Wraps ErrTypeError.
var ErrIncompatibleObjectError = fmt.Errorf("%w: incompatible object", ErrTypeError)

func ErrIncompatibleObject(value any, t IType) error {
	return EnrichError(ErrIncompatibleObjectError, "%T for type «%s»", value, t.Name())
}

// Named type can not be resolved. Wraps ErrTypeError.
var ErrTypeBindingError = fmt.Errorf("%w: binding", ErrTypeError)

func ErrTypeBinding(msg string, args ...any) error {
	return EnrichError(ErrTypeBindingError, msg, args...)
}

func ErrTypeNotResolved(name string) error {
	return ErrTypeBinding("type «%s» not found", name)
}

var ErrPropertyNotFoundError = errors.New("property not found")

func ErrPropertyNotFound(name string, t IType) error {
	return EnrichError(ErrPropertyNotFoundError, "field «%s» is not defined for type «%s»", name, t.Name())
}

var ErrIllegalArgumentError = errors.New("illegal argument")

func ErrIllegalArgument(msg string, args ...any) error {
	return EnrichError(ErrIllegalArgumentError, msg, args...)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

var ErrIncompatibleError = errors.New("incompatible")

func ErrIncompatible(msg string, args ...any) error {
	return EnrichError(ErrIncompatibleError, msg, args...)
}
