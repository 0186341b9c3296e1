/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package template provides the parsed representation of a format template.
package template

import "strings"

// Template is a parsed format string: an ordered sequence of literal runs
// and field references. A Template is immutable once parsed and may be
// resolved any number of times with different bindings.
type Template struct {
	// Source is the raw template text the Template was parsed from.
	Source string

	// Segments are the template's parts in source order.
	Segments []Segment
}

// Segment is one element of a parsed template: either a *Literal or a
// *FieldRef.
type Segment interface {
	segment()
}

// Literal is a run of plain text. Escaped braces ("{{", "}}") are already
// collapsed to single braces in Text.
type Literal struct {
	Text string
}

func (*Literal) segment() {}

// FieldRef is a "{...}" placeholder.
type FieldRef struct {
	// KeyPath identifies the value within the bindings. The first
	// component is the lookup key; the rest are traversal steps.
	KeyPath KeyPath

	// Conversion is the optional "!x" conversion flag, or 0.
	Conversion byte

	// FormatSpec is the raw text after ":", opaque to the parser.
	FormatSpec string

	// InlineDefault is the literal extracted from a trailing "._[...]"
	// key-path pair. Valid only when HasDefault is true.
	InlineDefault string
	HasDefault    bool

	// InlineConstraint is the regular expression source extracted from a
	// trailing ".~[...]" key-path pair, used only in reverse matching.
	InlineConstraint string
	HasConstraint    bool

	// RawSpan is the exact original source of the field, braces included.
	// Partial resolution emits it verbatim.
	RawSpan string

	// Offset is the byte offset of the field's "{" in the template source.
	Offset int
}

func (*FieldRef) segment() {}

// Key returns the field's primary lookup key (the first key-path component).
func (f *FieldRef) Key() string {
	return f.KeyPath[0].Text
}

// PathComponent is a single key-path step: attribute-style (".name") or
// index-style ("[key]").
type PathComponent struct {
	// Text is the component's verbatim text, brackets excluded.
	Text string

	// IsIndex reports whether the component was written as "[...]".
	IsIndex bool
}

// KeyPath is an ordered, non-empty sequence of traversal steps.
type KeyPath []PathComponent

// String reconstructs the key-path in source syntax.
func (kp KeyPath) String() string {
	var sb strings.Builder
	for i, c := range kp {
		switch {
		case c.IsIndex:
			sb.WriteByte('[')
			sb.WriteString(c.Text)
			sb.WriteByte(']')
		case i > 0:
			sb.WriteByte('.')
			sb.WriteString(c.Text)
		default:
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

// Fields returns the template's field references in source order.
func (t *Template) Fields() []*FieldRef {
	var fields []*FieldRef
	for _, seg := range t.Segments {
		if f, ok := seg.(*FieldRef); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// Keys returns the primary lookup key of every field, in source order,
// duplicates included.
func (t *Template) Keys() []string {
	var keys []string
	for _, f := range t.Fields() {
		keys = append(keys, f.Key())
	}
	return keys
}
