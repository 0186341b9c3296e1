/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package parser turns raw template strings into template.Template values.
package parser

import (
	"sync"

	"pformat.dev/pformat/template"
)

// cache memoizes parsed templates by their raw source text. Templates are
// immutable, so a lost race on first population only recomputes the same
// value.
var cache sync.Map

// Parse parses src into a Template, consulting a process-wide memoization
// cache. The returned Template is shared and must not be mutated.
func Parse(src string) (*template.Template, error) {
	if cached, ok := cache.Load(src); ok {
		return cached.(*template.Template), nil
	}
	t, err := ParseUncached(src)
	if err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(src, t)
	return actual.(*template.Template), nil
}

// ParseUncached parses src into a Template, bypassing the cache.
func ParseUncached(src string) (*template.Template, error) {
	segments, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return &template.Template{
		Source:   src,
		Segments: segments,
	}, nil
}
