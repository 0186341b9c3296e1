/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package format_test

import (
	"errors"
	"fmt"
	"testing"

	"pformat.dev/pformat/format"
	"pformat.dev/pformat/matcher"
	"pformat.dev/pformat/parser"
	"pformat.dev/pformat/template"
)

func TestRender_RoundTrip(t *testing.T) {
	// With every field bound, extended rendering agrees with ordinary
	// formatting regardless of mode.
	b := map[string]any{"name": "abc", "loss": 1.0 / 3}
	want := fmt.Sprintf("%s/loss_%.2f", "abc", 1.0/3)

	for _, mode := range []template.Mode{template.Partial, template.Glob, template.Default} {
		got, err := format.Render("{name}/loss_{loss:.2f}", mode, b)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if got != want {
			t.Errorf("mode %v: expected %q, got %q", mode, want, got)
		}
	}
}

func TestRender_IdempotentPartialChaining(t *testing.T) {
	tpl := "{a}_{b}.csv"

	once, err := format.Render(tpl, template.Partial, map[string]any{"a": "X"})
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	chained, err := format.Render(once, template.Partial, map[string]any{"b": "Y"})
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	direct, err := format.Render(tpl, template.Partial, map[string]any{"a": "X", "b": "Y"})
	if err != nil {
		t.Fatalf("direct render failed: %v", err)
	}

	if chained != direct {
		t.Errorf("chained %q != direct %q", chained, direct)
	}
}

func TestGFormat(t *testing.T) {
	got, err := format.GFormat("{a}/{b}.csv", map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("GFormat failed: %v", err)
	}
	if got != "1/*.csv" {
		t.Errorf("expected %q, got %q", "1/*.csv", got)
	}
}

func TestDFormat(t *testing.T) {
	got, err := format.DFormat("{x._[~unknown~]:.2f}", nil)
	if err != nil {
		t.Fatalf("DFormat failed: %v", err)
	}
	if got != "~unknown~" {
		t.Errorf("expected %q, got %q", "~unknown~", got)
	}

	got, err = format.DFormat("{x._[3]:.2f}", nil)
	if err != nil {
		t.Fatalf("DFormat failed: %v", err)
	}
	if got != "3.00" {
		t.Errorf("expected %q, got %q", "3.00", got)
	}
}

func TestPFormat(t *testing.T) {
	got, err := format.PFormat("{a}/b/{c}/d/{e}", map[string]any{"e": "eee"})
	if err != nil {
		t.Fatalf("PFormat failed: %v", err)
	}
	if got != "{a}/b/{c}/d/eee" {
		t.Errorf("expected %q, got %q", "{a}/b/{c}/d/eee", got)
	}
}

func TestRender_Escaping(t *testing.T) {
	for _, mode := range []template.Mode{template.Partial, template.Glob, template.Default} {
		got, err := format.Render("{{literal}}", mode, nil)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if got != "{literal}" {
			t.Errorf("mode %v: expected %q, got %q", mode, "{literal}", got)
		}
	}
}

func TestRender_ParseError(t *testing.T) {
	_, err := format.Render("open {brace", template.Partial, nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *parser.ParseError, got %T", err)
	}
}

func TestParse_SuccessAndFailure(t *testing.T) {
	values, err := format.Parse("/data/{id}.csv", "/data/42.csv")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if values["id"] != "42" {
		t.Errorf("expected id %q, got %q", "42", values["id"])
	}

	_, err = format.Parse("/data/{id}.csv", "/data/42.json")
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	var merr *matcher.MatchError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *matcher.MatchError, got %T", err)
	}
}

func TestParse_RenderRoundTrip(t *testing.T) {
	tpl := "{param}/{id}/out.csv"
	b := map[string]any{"param": "base", "id": "7"}

	rendered, err := format.Render(tpl, template.Partial, b)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	values, err := format.Parse(tpl, rendered)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for key, want := range b {
		if values[key] != want {
			t.Errorf("expected %s=%q, got %q", key, want, values[key])
		}
	}
}
