/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package parser

import "fmt"

// ErrorKind classifies template syntax errors.
type ErrorKind int

const (
	// UnbalancedBrace indicates a "{" without a matching "}", or a bare
	// "}" outside any field span.
	UnbalancedBrace ErrorKind = iota

	// EmptyKeyPath indicates a field whose key-path is empty, possibly
	// after inline default/constraint extraction.
	EmptyKeyPath

	// BadBracket indicates an unterminated "[...]" index component.
	BadBracket

	// BadConversion indicates a "!" conversion flag that is not a single
	// character.
	BadConversion

	// BadConstraint indicates an inline ".~[...]" pattern that is not a
	// valid regular expression.
	BadConstraint
)

// String returns a short description of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnbalancedBrace:
		return "unbalanced brace"
	case EmptyKeyPath:
		return "empty key-path"
	case BadBracket:
		return "unterminated bracket"
	case BadConversion:
		return "invalid conversion"
	case BadConstraint:
		return "invalid constraint pattern"
	default:
		return "parse error"
	}
}

// ParseError describes malformed template syntax. It is always fatal to
// the call that produced it.
type ParseError struct {
	// Kind classifies the error.
	Kind ErrorKind

	// Offset is the byte offset in the template source where the error
	// was detected.
	Offset int

	// Detail optionally elaborates on the failure.
	Detail string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("template: %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("template: %s at offset %d", e.Kind, e.Offset)
}
