/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package resolver renders parsed templates against bindings.
//
// Resolution is pure: identical (template, mode, bindings) inputs always
// produce identical output, and missing bindings never surface as errors.
package resolver

import (
	"strings"

	"pformat.dev/pformat/template"
)

// Wildcard is the marker substituted for missing fields in glob mode.
const Wildcard = "*"

// Option configures a Resolver.
type Option func(*Resolver)

// WithWildcard overrides the glob-mode wildcard marker.
func WithWildcard(marker string) Option {
	return func(r *Resolver) {
		r.wildcard = marker
	}
}

// Resolver renders templates. The zero-value configuration substitutes
// Wildcard in glob mode. A Resolver is immutable after construction and
// safe for concurrent use.
type Resolver struct {
	wildcard string
}

// New creates a Resolver with the given options.
func New(opts ...Option) *Resolver {
	r := &Resolver{wildcard: Wildcard}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Render resolves t against bindings using the default Resolver.
func Render(t *template.Template, mode template.Mode, bindings map[string]any) string {
	return defaultResolver.Render(t, mode, bindings)
}

// Render resolves every field of t against bindings and concatenates the
// result in segment order.
func (r *Resolver) Render(t *template.Template, mode template.Mode, bindings map[string]any) string {
	var sb strings.Builder
	for _, seg := range t.Segments {
		switch s := seg.(type) {
		case *template.Literal:
			sb.WriteString(s.Text)
		case *template.FieldRef:
			sb.WriteString(r.resolveField(s, mode, bindings))
		}
	}
	return sb.String()
}

// resolveField produces the output text for a single field.
//
// A field whose key-path traverses successfully is formatted with its
// conversion and format spec. A missing field falls back to its inline
// default when present, regardless of mode; otherwise partial and default
// modes emit the raw span verbatim and glob mode emits the wildcard.
func (r *Resolver) resolveField(f *template.FieldRef, mode template.Mode, bindings map[string]any) string {
	if v, ok := traverse(f.KeyPath, bindings); ok {
		return formatValue(convertValue(v, f.Conversion), f.FormatSpec)
	}

	if f.HasDefault {
		return formatValue(f.InlineDefault, f.FormatSpec)
	}

	if mode == template.Glob {
		return r.wildcard
	}
	return f.RawSpan
}
