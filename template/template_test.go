/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package template_test

import (
	"testing"

	"pformat.dev/pformat/template"
)

func TestMode_Strings(t *testing.T) {
	tests := []struct {
		mode template.Mode
		name string
	}{
		{template.Partial, "partial"},
		{template.Glob, "glob"},
		{template.Default, "default"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.name {
			t.Errorf("Mode(%d).String(): expected %q, got %q", tt.mode, tt.name, got)
		}
		parsed, err := template.ModeFromString(tt.name)
		if err != nil {
			t.Errorf("ModeFromString(%q) failed: %v", tt.name, err)
		}
		if parsed != tt.mode {
			t.Errorf("ModeFromString(%q): expected %v, got %v", tt.name, tt.mode, parsed)
		}
	}
}

func TestModeFromString_Unknown(t *testing.T) {
	if _, err := template.ModeFromString("verbose"); err == nil {
		t.Error("expected error for unrecognized mode")
	}
}

func TestKeyPath_String(t *testing.T) {
	kp := template.KeyPath{
		{Text: "a"},
		{Text: "0", IsIndex: true},
		{Text: "b"},
		{Text: "key", IsIndex: true},
	}
	if got := kp.String(); got != "a[0].b[key]" {
		t.Errorf("expected %q, got %q", "a[0].b[key]", got)
	}
}

func TestTemplate_FieldsAndKeys(t *testing.T) {
	tmpl := &template.Template{
		Source: "{a}/{b}/{a}",
		Segments: []template.Segment{
			&template.FieldRef{KeyPath: template.KeyPath{{Text: "a"}}},
			&template.Literal{Text: "/"},
			&template.FieldRef{KeyPath: template.KeyPath{{Text: "b"}}},
			&template.Literal{Text: "/"},
			&template.FieldRef{KeyPath: template.KeyPath{{Text: "a"}}},
		},
	}

	if got := len(tmpl.Fields()); got != 3 {
		t.Errorf("expected 3 fields, got %d", got)
	}

	keys := tmpl.Keys()
	want := []string{"a", "b", "a"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], keys[i])
		}
	}
}
