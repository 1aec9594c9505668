/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package doctype

import (
	"strings"
	"unique"
)

// Null (empty) QName
var NullQName = QName{}

// Builds a qualified name from local name and prefix.
//
// # Panics:
//   - if local name is empty,
//   - if local name or prefix contains the prefix separator
func NewQName(local, prefix string) QName {
	if local == "" {
		panic(ErrMissed("qualified name local part"))
	}
	if strings.Contains(local, QNamePrefixSeparator) {
		panic(ErrInvalid("local name «%s» contains «%s»", local, QNamePrefixSeparator))
	}
	if strings.Contains(prefix, QNamePrefixSeparator) {
		panic(ErrInvalid("prefix «%s» contains «%s»", prefix, QNamePrefixSeparator))
	}
	prefixed := local
	if prefix != "" {
		prefixed = prefix + QNamePrefixSeparator + local
	}
	return QName{
		local:    intern(local),
		prefix:   intern(prefix),
		prefixed: intern(prefixed),
	}
}

// Parses qualified name from `prefix:local` or `local` string.
func ParseQName(name string) QName {
	return ParseQNameWithPrefix(name, "")
}

// Parses qualified name from string. If the string has no prefix,
// then specified prefix is used.
func ParseQNameWithPrefix(name, prefix string) QName {
	if p, l, ok := strings.Cut(name, QNamePrefixSeparator); ok {
		return NewQName(l, p)
	}
	return NewQName(name, prefix)
}

func (q QName) Local() string { return q.local }

func (q QName) Prefix() string { return q.prefix }

func (q QName) Prefixed() string { return q.prefixed }

func (q QName) String() string { return q.prefixed }

// Compare two qualified names by prefixed form.
func CompareQName(a, b QName) int {
	return strings.Compare(a.prefixed, b.prefixed)
}

func intern(s string) string {
	if s == "" {
		return s
	}
	return unique.Make(s).Value()
}

// Namespace with empty URI and prefix
var DefaultNS = Namespace{}

func NewNamespace(uri, prefix string) Namespace {
	if strings.Contains(prefix, QNamePrefixSeparator) {
		panic(ErrInvalid("namespace prefix «%s» contains «%s»", prefix, QNamePrefixSeparator))
	}
	return Namespace{uri: uri, prefix: prefix}
}

func (ns Namespace) URI() string { return ns.uri }

func (ns Namespace) Prefix() string { return ns.prefix }

// Returns is namespace has a prefix
func (ns Namespace) HasPrefix() bool { return ns.prefix != "" }

func (ns Namespace) String() string {
	if ns.prefix == "" {
		return ns.uri
	}
	return ns.prefix + "=" + ns.uri
}
