/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package format is the public entry point for extended template
// formatting: partial, glob, and default rendering plus reverse matching.
//
// Templates use curly-brace fields with ordinary key-path, conversion, and
// format-spec syntax. Two inline encodings ride inside the key-path:
//
//	{loss._[--]:.2f}   default "--" when loss is unbound
//	{id.~[\d+]}        reverse-match constraint on id
package format

import (
	"pformat.dev/pformat/matcher"
	"pformat.dev/pformat/parser"
	"pformat.dev/pformat/resolver"
	"pformat.dev/pformat/template"
)

// Render formats tpl against bindings in the given mode. It fails only
// with *parser.ParseError on malformed template syntax; missing bindings
// resolve per the mode instead of failing.
func Render(tpl string, mode template.Mode, bindings map[string]any) (string, error) {
	t, err := parser.Parse(tpl)
	if err != nil {
		return "", err
	}
	return resolver.Render(t, mode, bindings), nil
}

// Parse reverse-matches candidate against tpl and returns the extracted
// field values keyed by each field's primary key. It fails with
// *parser.ParseError on malformed template syntax or *matcher.MatchError
// when candidate does not match.
func Parse(tpl, candidate string) (map[string]string, error) {
	t, err := parser.Parse(tpl)
	if err != nil {
		return nil, err
	}
	return matcher.Match(t, candidate)
}

// PFormat renders tpl in partial mode: missing fields stay in place,
// verbatim, for a later pass.
func PFormat(tpl string, bindings map[string]any) (string, error) {
	return Render(tpl, template.Partial, bindings)
}

// GFormat renders tpl in glob mode: missing fields become the wildcard
// marker.
func GFormat(tpl string, bindings map[string]any) (string, error) {
	return Render(tpl, template.Glob, bindings)
}

// DFormat renders tpl in default mode: missing fields use their inline
// defaults, and fields without one stay in place as in partial mode.
func DFormat(tpl string, bindings map[string]any) (string, error) {
	return Render(tpl, template.Default, bindings)
}
