/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"testing"

	"pformat.dev/pformat/parser"
	"pformat.dev/pformat/template"
)

func mustParse(t *testing.T, src string) *template.Template {
	t.Helper()
	tmpl, err := parser.ParseUncached(src)
	if err != nil {
		t.Fatalf("ParseUncached(%q) failed: %v", src, err)
	}
	return tmpl
}

func TestTokenize_LiteralsAndFields(t *testing.T) {
	tmpl := mustParse(t, "a/{b}/c{d}e")

	if len(tmpl.Segments) != 5 {
		t.Fatalf("expected 5 segments, got %d: %#v", len(tmpl.Segments), tmpl.Segments)
	}

	lit, ok := tmpl.Segments[0].(*template.Literal)
	if !ok || lit.Text != "a/" {
		t.Errorf("segment 0: expected literal %q, got %#v", "a/", tmpl.Segments[0])
	}

	field, ok := tmpl.Segments[1].(*template.FieldRef)
	if !ok {
		t.Fatalf("segment 1: expected field, got %#v", tmpl.Segments[1])
	}
	if field.Key() != "b" {
		t.Errorf("expected key %q, got %q", "b", field.Key())
	}
	if field.RawSpan != "{b}" {
		t.Errorf("expected raw span %q, got %q", "{b}", field.RawSpan)
	}
	if field.Offset != 2 {
		t.Errorf("expected offset 2, got %d", field.Offset)
	}
}

func TestTokenize_EscapedBraces(t *testing.T) {
	tmpl := mustParse(t, "{{literal}}")

	if len(tmpl.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(tmpl.Segments))
	}
	lit, ok := tmpl.Segments[0].(*template.Literal)
	if !ok {
		t.Fatalf("expected literal, got %#v", tmpl.Segments[0])
	}
	if lit.Text != "{literal}" {
		t.Errorf("expected %q, got %q", "{literal}", lit.Text)
	}
}

func TestTokenize_SourceRoundTrip(t *testing.T) {
	// Concatenating segment text (literals escape-normalized, fields
	// verbatim) must reproduce the normalized source.
	src := "x{{y}}/{a.b[0]!s:>8.2f}/{c._[--]}tail"
	tmpl := mustParse(t, src)

	var got string
	for _, seg := range tmpl.Segments {
		switch s := seg.(type) {
		case *template.Literal:
			got += s.Text
		case *template.FieldRef:
			got += s.RawSpan
		}
	}

	want := "x{y}/{a.b[0]!s:>8.2f}/{c._[--]}tail"
	if got != want {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		src    string
		kind   parser.ErrorKind
		offset int
	}{
		{"open {brace", parser.UnbalancedBrace, 5},
		{"bare } brace", parser.UnbalancedBrace, 5},
		{"{a} trailing {", parser.UnbalancedBrace, 13},
		{"{ne{sted}", parser.UnbalancedBrace, 3},
		{"{}", parser.EmptyKeyPath, 1},
		{"{._[x]}", parser.EmptyKeyPath, 1},
		{"{a[0}", parser.BadBracket, 2},
		{"{a!ss}", parser.BadConversion, 2},
		{`{a.~[(]}`, parser.BadConstraint, 1},
	}

	for _, tt := range tests {
		_, err := parser.ParseUncached(tt.src)
		if err == nil {
			t.Errorf("ParseUncached(%q): expected error", tt.src)
			continue
		}
		var perr *parser.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseUncached(%q): expected *ParseError, got %T", tt.src, err)
			continue
		}
		if perr.Kind != tt.kind {
			t.Errorf("ParseUncached(%q): expected kind %v, got %v", tt.src, tt.kind, perr.Kind)
		}
		if perr.Offset != tt.offset {
			t.Errorf("ParseUncached(%q): expected offset %d, got %d", tt.src, tt.offset, perr.Offset)
		}
	}
}

func TestExtractField_ConversionAndSpec(t *testing.T) {
	tmpl := mustParse(t, "{a.b!s:>8.2f}")

	field := tmpl.Fields()[0]
	if got := field.KeyPath.String(); got != "a.b" {
		t.Errorf("expected key-path %q, got %q", "a.b", got)
	}
	if field.Conversion != 's' {
		t.Errorf("expected conversion 's', got %q", field.Conversion)
	}
	if field.FormatSpec != ">8.2f" {
		t.Errorf("expected spec %q, got %q", ">8.2f", field.FormatSpec)
	}
}

func TestExtractField_InlineDefault(t *testing.T) {
	tmpl := mustParse(t, "{loss._[--]:.2f}")

	field := tmpl.Fields()[0]
	if !field.HasDefault {
		t.Fatal("expected inline default")
	}
	if field.InlineDefault != "--" {
		t.Errorf("expected default %q, got %q", "--", field.InlineDefault)
	}
	if got := field.KeyPath.String(); got != "loss" {
		t.Errorf("expected key-path %q after extraction, got %q", "loss", got)
	}
	if field.FormatSpec != ".2f" {
		t.Errorf("expected spec %q, got %q", ".2f", field.FormatSpec)
	}
}

func TestExtractField_InlineConstraint(t *testing.T) {
	tmpl := mustParse(t, `{id.~[\d+]}`)

	field := tmpl.Fields()[0]
	if !field.HasConstraint {
		t.Fatal("expected inline constraint")
	}
	if field.InlineConstraint != `\d+` {
		t.Errorf("expected constraint %q, got %q", `\d+`, field.InlineConstraint)
	}
	if got := field.KeyPath.String(); got != "id" {
		t.Errorf("expected key-path %q after extraction, got %q", "id", got)
	}
}

func TestExtractField_DefaultAndConstraint(t *testing.T) {
	tmpl := mustParse(t, `{x._[--].~[\d+]}`)

	field := tmpl.Fields()[0]
	if !field.HasDefault || field.InlineDefault != "--" {
		t.Errorf("expected default %q, got %q (has=%v)", "--", field.InlineDefault, field.HasDefault)
	}
	if !field.HasConstraint || field.InlineConstraint != `\d+` {
		t.Errorf("expected constraint %q, got %q (has=%v)", `\d+`, field.InlineConstraint, field.HasConstraint)
	}
	if got := field.KeyPath.String(); got != "x" {
		t.Errorf("expected key-path %q, got %q", "x", got)
	}
}

func TestExtractField_DefaultWithBracketsInside(t *testing.T) {
	// Nested brackets are scanned with a counter, so character classes
	// survive inside constraints.
	tmpl := mustParse(t, `{v.~[[0-9]+]}`)

	field := tmpl.Fields()[0]
	if field.InlineConstraint != "[0-9]+" {
		t.Errorf("expected constraint %q, got %q", "[0-9]+", field.InlineConstraint)
	}
}

func TestExtractField_MarkerNotTrailing(t *testing.T) {
	// "_" with no index pair following stays an ordinary component.
	tmpl := mustParse(t, "{a._.b}")

	field := tmpl.Fields()[0]
	if field.HasDefault {
		t.Error("expected no inline default")
	}
	if got := field.KeyPath.String(); got != "a._.b" {
		t.Errorf("expected key-path %q, got %q", "a._.b", got)
	}
}

func TestExtractField_IndexComponents(t *testing.T) {
	tmpl := mustParse(t, "{a[0].b[key]}")

	field := tmpl.Fields()[0]
	kp := field.KeyPath
	if len(kp) != 4 {
		t.Fatalf("expected 4 components, got %d: %v", len(kp), kp)
	}
	if kp[1].Text != "0" || !kp[1].IsIndex {
		t.Errorf("component 1: expected index \"0\", got %+v", kp[1])
	}
	if kp[3].Text != "key" || !kp[3].IsIndex {
		t.Errorf("component 3: expected index \"key\", got %+v", kp[3])
	}
}

func TestParse_Memoization(t *testing.T) {
	first, err := parser.Parse("{a}/{b}")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	second, err := parser.Parse("{a}/{b}")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if first != second {
		t.Error("expected cached Parse to return the same template")
	}
}
