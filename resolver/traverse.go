/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"reflect"
	"strconv"

	"pformat.dev/pformat/template"
)

// traverse looks up a key-path in bindings. The first component is a map
// lookup; the remaining components step through the found value by
// attribute or index. Any failed step reports the field as missing rather
// than returning an error.
func traverse(kp template.KeyPath, bindings map[string]any) (any, bool) {
	v, ok := bindings[kp[0].Text]
	if !ok {
		return nil, false
	}
	for _, comp := range kp[1:] {
		v, ok = step(v, comp)
		if !ok {
			return nil, false
		}
	}
	return v, true
}

// step performs one traversal step: map key, struct field, or
// slice/array/string index.
func step(v any, comp template.PathComponent) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		return stepMap(rv, comp.Text)

	case reflect.Struct:
		f := rv.FieldByName(comp.Text)
		if f.IsValid() && f.CanInterface() {
			return f.Interface(), true
		}
		return nil, false

	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(comp.Text)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true

	case reflect.String:
		idx, err := strconv.Atoi(comp.Text)
		s := rv.String()
		if err != nil || idx < 0 || idx >= len(s) {
			return nil, false
		}
		return string(s[idx]), true

	default:
		return nil, false
	}
}

// stepMap indexes a map by string key, or by integer key when the map's
// key type is an integer kind.
func stepMap(rv reflect.Value, key string) (any, bool) {
	switch rv.Type().Key().Kind() {
	case reflect.String:
		mv := rv.MapIndex(reflect.ValueOf(key))
		if mv.IsValid() {
			return mv.Interface(), true
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, false
		}
		k := reflect.ValueOf(n).Convert(rv.Type().Key())
		mv := rv.MapIndex(k)
		if mv.IsValid() {
			return mv.Interface(), true
		}
	}
	return nil, false
}
