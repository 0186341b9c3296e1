/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// formatValue applies a format spec to a value, delegating to fmt. A value
// that cannot satisfy the spec falls back to plain stringification; by
// contract, rendering never fails for value-shape reasons. An inline
// default literal takes the same path, so "{x._[3]:.2f}" formats to "3.00"
// while "{x._[--]:.2f}" falls back to "--".
func formatValue(v any, spec string) string {
	if spec == "" {
		return fmt.Sprint(v)
	}
	if out, ok := applySpec(v, spec); ok {
		return out
	}
	return fmt.Sprint(v)
}

// formatSpec is a parsed "[[fill]align][sign][0][width][.precision][type]"
// directive.
type formatSpec struct {
	fill     rune
	align    byte // '<', '>', '^', or 0
	sign     byte // '+', ' ', or 0
	zero     bool
	width    int
	hasWidth bool
	prec     int
	hasPrec  bool
	verb     byte // type character, or 0
}

const specVerbs = "sdboxXeEfFgG%"

func isAlign(b byte) bool {
	return b == '<' || b == '>' || b == '^'
}

// parseSpec parses a format spec. A spec outside the supported
// mini-language reports !ok, which callers treat as unformattable.
func parseSpec(s string) (formatSpec, bool) {
	sp := formatSpec{fill: ' '}

	// [[fill]align]
	if r, size := utf8.DecodeRuneInString(s); size > 0 && len(s) > size && isAlign(s[size]) {
		sp.fill = r
		sp.align = s[size]
		s = s[size+1:]
	} else if len(s) > 0 && isAlign(s[0]) {
		sp.align = s[0]
		s = s[1:]
	}

	// [sign]
	if len(s) > 0 && (s[0] == '+' || s[0] == '-' || s[0] == ' ') {
		if s[0] != '-' {
			sp.sign = s[0]
		}
		s = s[1:]
	}

	// [0][width]
	if len(s) > 0 && s[0] == '0' {
		sp.zero = true
		s = s[1:]
	}
	for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
		sp.width = sp.width*10 + int(s[0]-'0')
		sp.hasWidth = true
		s = s[1:]
	}

	// [.precision]
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		if len(s) == 0 || s[0] < '0' || s[0] > '9' {
			return sp, false
		}
		for len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
			sp.prec = sp.prec*10 + int(s[0]-'0')
			sp.hasPrec = true
			s = s[1:]
		}
	}

	// [type]
	if len(s) > 1 {
		return sp, false
	}
	if len(s) == 1 {
		if !strings.ContainsRune(specVerbs, rune(s[0])) {
			return sp, false
		}
		sp.verb = s[0]
	}

	return sp, true
}

// applySpec formats v per spec. ok is false when the spec is outside the
// supported mini-language or v cannot be coerced to the spec's type.
func applySpec(v any, spec string) (string, bool) {
	sp, ok := parseSpec(spec)
	if !ok {
		return "", false
	}

	var body string
	numeric := false

	switch sp.verb {
	case 'd', 'b', 'o', 'x', 'X':
		n, ok := asInt(v)
		if !ok {
			return "", false
		}
		body = formatInt(n, sp)
		numeric = true
	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		f, ok := asFloat(v)
		if !ok {
			return "", false
		}
		body = formatFloat(f, sp)
		numeric = true
	default: // 's' or none
		body = fmt.Sprint(v)
		if sp.hasPrec {
			runes := []rune(body)
			if len(runes) > sp.prec {
				body = string(runes[:sp.prec])
			}
		}
		numeric = isNumeric(v)
	}

	return pad(body, sp, numeric), true
}

func formatInt(n int64, sp formatSpec) string {
	var body string
	switch sp.verb {
	case 'b':
		body = strconv.FormatInt(n, 2)
	case 'o':
		body = strconv.FormatInt(n, 8)
	case 'x':
		body = strconv.FormatInt(n, 16)
	case 'X':
		body = strings.ToUpper(strconv.FormatInt(n, 16))
	default:
		body = strconv.FormatInt(n, 10)
	}
	return applySign(body, n >= 0, sp)
}

func formatFloat(f float64, sp formatSpec) string {
	prec := -1
	if sp.hasPrec {
		prec = sp.prec
	}

	var body string
	switch sp.verb {
	case 'e', 'E':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f, sp.verb, prec, 64)
	case 'g', 'G':
		body = strconv.FormatFloat(f, sp.verb, prec, 64)
	case '%':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f*100, 'f', prec, 64) + "%"
	default: // 'f', 'F'
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f, 'f', prec, 64)
	}
	return applySign(body, f >= 0, sp)
}

func applySign(body string, nonNegative bool, sp formatSpec) string {
	if nonNegative && sp.sign != 0 {
		return string(sp.sign) + body
	}
	return body
}

// pad widens body to the spec's width. Numeric values right-align by
// default and honor sign-aware zero padding; everything else left-aligns.
func pad(body string, sp formatSpec, numeric bool) string {
	if !sp.hasWidth {
		return body
	}
	gap := sp.width - utf8.RuneCountInString(body)
	if gap <= 0 {
		return body
	}

	align := sp.align
	fill := sp.fill
	if align == 0 {
		if numeric && sp.zero {
			// Zero padding goes between the sign and the digits.
			sign := ""
			if len(body) > 0 && (body[0] == '-' || body[0] == '+' || body[0] == ' ') {
				sign, body = body[:1], body[1:]
			}
			return sign + strings.Repeat("0", gap) + body
		}
		if numeric {
			align = '>'
		} else {
			align = '<'
		}
	}

	switch align {
	case '>':
		return strings.Repeat(string(fill), gap) + body
	case '^':
		left := gap / 2
		return strings.Repeat(string(fill), left) + body + strings.Repeat(string(fill), gap-left)
	default:
		return body + strings.Repeat(string(fill), gap)
	}
}

// asInt coerces integer kinds and integer-formatted strings.
func asInt(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), true
	case reflect.String:
		n, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// asFloat coerces numeric kinds and numeric strings.
func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isNumeric(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
